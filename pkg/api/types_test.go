package api

import (
	"encoding/json"
	"testing"
)

func TestMessageToMap(t *testing.T) {
	m := Message{Role: "user", Content: "Hello"}
	got := m.ToMap()

	if got["role"] != "user" {
		t.Errorf("expected role %q, got %v", "user", got["role"])
	}
	if got["content"] != "Hello" {
		t.Errorf("expected content %q, got %v", "Hello", got["content"])
	}
	if len(got) != 2 {
		t.Errorf("expected exactly 2 keys, got %d", len(got))
	}
}

func TestChatCompletionDecode(t *testing.T) {
	raw := `{
		"id": "cmpl-abc123",
		"object": "chat.completion",
		"created": 1735689600,
		"model": "orangic-1",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": "Hi"}, "finish_reason": "stop"},
			{"index": 1, "message": {"role": "assistant", "content": "Hey"}, "finish_reason": null}
		],
		"usage": {"prompt_tokens": 5, "completion_tokens": 2, "total_tokens": 7}
	}`

	var c ChatCompletion
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if c.ID != "cmpl-abc123" {
		t.Errorf("expected id %q, got %q", "cmpl-abc123", c.ID)
	}
	if c.Model != "orangic-1" {
		t.Errorf("expected model %q, got %q", "orangic-1", c.Model)
	}
	if len(c.Choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(c.Choices))
	}

	// Choice order follows the server-provided index order.
	if c.Choices[0].Index != 0 || c.Choices[1].Index != 1 {
		t.Errorf("choice order not preserved: indices %d, %d", c.Choices[0].Index, c.Choices[1].Index)
	}
	if c.Choices[0].FinishReason == nil || *c.Choices[0].FinishReason != "stop" {
		t.Errorf("expected finish_reason %q, got %v", "stop", c.Choices[0].FinishReason)
	}
	if c.Choices[1].FinishReason != nil {
		t.Errorf("expected nil finish_reason, got %q", *c.Choices[1].FinishReason)
	}
	if c.Choices[0].Message["content"] != "Hi" {
		t.Errorf("expected message content %q, got %v", "Hi", c.Choices[0].Message["content"])
	}
	if c.Usage.TotalTokens != 7 {
		t.Errorf("expected total_tokens 7, got %d", c.Usage.TotalTokens)
	}
}

func TestChunkChannelDefault(t *testing.T) {
	var chunk ChatCompletionChunk
	if err := json.Unmarshal([]byte(`{"content":"Hi"}`), &chunk); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if chunk.Content != "Hi" {
		t.Errorf("expected content %q, got %q", "Hi", chunk.Content)
	}
	if chunk.Channel != "final" {
		t.Errorf("expected default channel %q, got %q", "final", chunk.Channel)
	}
}

func TestChunkChannelExplicit(t *testing.T) {
	var chunk ChatCompletionChunk
	if err := json.Unmarshal([]byte(`{"content":"thinking...","channel":"analysis"}`), &chunk); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if chunk.Channel != "analysis" {
		t.Errorf("expected channel %q, got %q", "analysis", chunk.Channel)
	}
}
