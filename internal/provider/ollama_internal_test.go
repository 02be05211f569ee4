package provider

import (
	"context"
	"errors"
	"testing"

	ollama "github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOllamaClient records the request and streams canned response chunks.
type mockOllamaClient struct {
	gotReq *ollama.GenerateRequest
	chunks []string
	err    error
}

func (m *mockOllamaClient) Generate(
	_ context.Context,
	req *ollama.GenerateRequest,
	fn ollama.GenerateResponseFunc,
) error {
	m.gotReq = req
	if m.err != nil {
		return m.err
	}

	for _, chunk := range m.chunks {
		if err := fn(ollama.GenerateResponse{Response: chunk}); err != nil {
			return err
		}
	}

	return nil
}

func TestOllamaNativeStrategySummarize(t *testing.T) {
	mock := &mockOllamaClient{chunks: []string{"A mock ", "summary."}}
	p := NewOllama("http://localhost:11434/v1", WithStrategy(OllamaNativeStrategy{}))

	prompts := Prompts{System: "Be brief.", UserPrefix: "Summarize:\n"}

	summary, err := p.Summarize(context.Background(), mock, "Example Domain.", prompts)
	require.NoError(t, err)
	assert.Equal(t, "A mock summary.", summary)

	require.NotNil(t, mock.gotReq)
	assert.Equal(t, OllamaDefaultModel, mock.gotReq.Model)
	assert.Equal(t, "Be brief.", mock.gotReq.System)
	assert.Equal(t, "Summarize:\nExample Domain.", mock.gotReq.Prompt)
	require.NotNil(t, mock.gotReq.Stream)
	assert.False(t, *mock.gotReq.Stream)
}

func TestOllamaNativeStrategyBackendError(t *testing.T) {
	mock := &mockOllamaClient{err: errors.New("model not found")}
	p := NewOllama("http://localhost:11434/v1", WithStrategy(OllamaNativeStrategy{}))

	_, err := p.Summarize(context.Background(), mock, "content", Prompts{})
	require.Error(t, err)
	assert.Equal(t,
		"An error occurred with Ollama: do request: model not found",
		ErrorText(p.Name, err))
}

func TestOllamaNativeStrategyRejectsForeignClient(t *testing.T) {
	p := NewOllama("http://localhost:11434/v1", WithStrategy(OllamaNativeStrategy{}))

	_, err := p.Summarize(context.Background(), struct{}{}, "content", Prompts{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected client type")
}

func TestOllamaNativeStrategyNewClient(t *testing.T) {
	p := NewOllama("http://localhost:11434/v1", WithStrategy(OllamaNativeStrategy{}))

	client, err := p.NewClient(context.Background())
	require.NoError(t, err)

	_, ok := client.(OllamaClient)
	assert.True(t, ok, "native client must satisfy OllamaClient")
}
