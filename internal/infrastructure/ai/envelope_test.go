package ai

import "testing"

func TestExtractTextCompletionShape(t *testing.T) {
	body := []byte(`{"choices":[{"text":"  \"celebrate.py\"\n"}]}`)
	if got := ExtractText(body); got != `"celebrate.py"` {
		t.Fatalf("ExtractText() = %q", got)
	}
}

func TestExtractTextChatShape(t *testing.T) {
	body := []byte(`{"choices":[{"message":{"content":"move_forward.sh"}}]}`)
	if got := ExtractText(body); got != "move_forward.sh" {
		t.Fatalf("ExtractText() = %q", got)
	}
}

func TestExtractTextOllamaChatShape(t *testing.T) {
	body := []byte(`{"message":{"content":"turn_left.sh"}}`)
	if got := ExtractText(body); got != "turn_left.sh" {
		t.Fatalf("ExtractText() = %q", got)
	}
}

func TestExtractTextOllamaGenerateShape(t *testing.T) {
	body := []byte(`{"response":"celebrate.py"}`)
	if got := ExtractText(body); got != "celebrate.py" {
		t.Fatalf("ExtractText() = %q", got)
	}
}

func TestExtractTextBareJSONString(t *testing.T) {
	body := []byte(`"celebrate.py"`)
	if got := ExtractText(body); got != "celebrate.py" {
		t.Fatalf("ExtractText() = %q", got)
	}
}

func TestExtractTextUnstructuredBody(t *testing.T) {
	body := []byte("celebrate.py\n")
	if got := ExtractText(body); got != "celebrate.py" {
		t.Fatalf("ExtractText() = %q", got)
	}
}

func TestExtractTextUnrecognizedEnvelopeIsEmpty(t *testing.T) {
	body := []byte(`{"result":{"nested":"stuff"}}`)
	if got := ExtractText(body); got != "" {
		t.Fatalf("ExtractText() = %q, want empty", got)
	}
}
