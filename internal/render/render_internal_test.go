package render

import (
	"bytes"
	"strings"
	"testing"
)

func TestPanelContainsTitleAndBody(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	r.Summary("Ollama (llama3.2:latest)", "A short summary.")

	rendered := out.String()
	if !strings.Contains(rendered, "Ollama (llama3.2:latest)") {
		t.Fatalf("expected title in output: %q", rendered)
	}
	if !strings.Contains(rendered, "A short summary.") {
		t.Fatalf("expected body in output: %q", rendered)
	}
}

func TestPanelIsUncoloredForNonTerminalWriter(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	if r.colored {
		t.Fatalf("expected colors to be disabled for a buffer writer")
	}

	r.Error("Error", "something failed")

	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("expected no ANSI escapes in output: %q", out.String())
	}
}

func TestPanelWrapsLongBodies(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	r.Summary("Title", strings.Repeat("wordy ", 50))

	for _, line := range strings.Split(out.String(), "\n") {
		if len([]rune(line)) > panelMaxWidth+4 {
			t.Fatalf("line exceeds panel width: %q", line)
		}
	}
}
