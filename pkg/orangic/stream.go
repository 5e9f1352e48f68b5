package orangic

import (
	"bufio"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/orangic/orangic-go/pkg/api"
	"github.com/orangic/orangic-go/pkg/debug"
	"github.com/orangic/orangic-go/pkg/observability"
)

// ChatCompletionStream is a forward-only, single-pass sequence of
// chunks from a streaming completion. It is pull-based: each Recv
// call performs at most one blocking read per line on the underlying
// connection, so the caller controls pacing.
//
// SSE format expected:
//
//	data: {"content":"...","channel":"final"}\n
//	\n
//	data: [DONE]\n
//	\n
//
// Lines without the "data: " prefix (blank keep-alives, comments) and
// malformed JSON payloads are skipped. A single bad event never
// terminates the stream.
//
// Not safe for concurrent use.
type ChatCompletionStream struct {
	body      io.ReadCloser
	scanner   *bufio.Scanner
	done      bool
	closeOnce sync.Once
}

func newChatCompletionStream(body io.ReadCloser) *ChatCompletionStream {
	return &ChatCompletionStream{
		body:    body,
		scanner: bufio.NewScanner(body),
	}
}

// Recv returns the next chunk. It returns io.EOF after the [DONE]
// sentinel or the end of the stream, and the transport error when the
// connection drops mid-stream. The underlying connection is released
// on every terminal return.
func (s *ChatCompletionStream) Recv() (*api.ChatCompletionChunk, error) {
	if s.done {
		return nil, io.EOF
	}

	for s.scanner.Scan() {
		line := s.scanner.Text()

		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")

		if strings.TrimSpace(payload) == "[DONE]" {
			s.Close()
			return nil, io.EOF
		}

		var chunk api.ChatCompletionChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			slog.Warn("skipping malformed stream chunk",
				"error", err.Error(),
				"data", debug.Truncate(payload, 200),
			)
			continue
		}

		debug.Log("streaming", "chunk received", "channel", chunk.Channel, "bytes", len(chunk.Content))
		return &chunk, nil
	}

	err := s.scanner.Err()
	s.Close()
	if err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// Close releases the underlying connection. It is safe to call
// multiple times and may be called before the stream is drained;
// abandoning a stream without Close leaks the connection.
func (s *ChatCompletionStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.done = true
		err = s.body.Close()
		observability.StreamsActive.Dec()
	})
	return err
}
