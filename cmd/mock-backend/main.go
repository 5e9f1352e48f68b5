// Command mock-backend runs a deterministic Orangic API server for
// development and client testing. It serves the chat-completions,
// balance, and usage-report endpoints with predictable responses.
//
// Configuration:
//
//	MOCK_PORT    - Listen port (default: 9090)
//	MOCK_API_KEY - Accepted bearer token (default: any non-empty key)
//
// The X-Mock-Scenario request header forces failure modes on the
// chat-completions endpoint: "rate-limit" (429), "server-error" (500
// with a non-JSON body), and "malformed-chunk" (a bad SSE event mixed
// into an otherwise valid stream).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
)

func main() {
	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", withAuth(handleChatCompletions))
	mux.HandleFunc("GET /v1/balance", withAuth(handleBalance))
	mux.HandleFunc("GET /v1/report/usage", withAuth(handleUsageReport))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mock backend starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("mock backend failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("mock backend shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

// --- Auth ---

// withAuth enforces the bearer token. With MOCK_API_KEY unset, any
// non-empty key passes; the literal key "bad-key" is always rejected
// so clients can exercise the 401 path.
func withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" || token == "bad-key" {
			writeJSONError(w, http.StatusUnauthorized, "bad key")
			return
		}
		if want := os.Getenv("MOCK_API_KEY"); want != "" && token != want {
			writeJSONError(w, http.StatusUnauthorized, "bad key")
			return
		}
		next(w, r)
	}
}

// writeJSONError emits the flat {"error": "..."} shape the real API
// uses for auth failures.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeNestedError emits the nested {"error": {"message": "..."}} shape.
func writeNestedError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"message": message},
	})
}

// --- Types ---

type chatRequest struct {
	Model    string           `json:"model"`
	Messages []map[string]any `json:"messages"`
	Stream   bool             `json:"stream"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

type chatChoice struct {
	Index        int            `json:"index"`
	Message      map[string]any `json:"message"`
	FinishReason string         `json:"finish_reason"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// --- Chat completions ---

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	scenario := r.Header.Get("X-Mock-Scenario")
	switch scenario {
	case "rate-limit":
		writeNestedError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	case "server-error":
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	model := req.Model
	if model == "" {
		model = "mock-model"
	}

	if req.Stream {
		handleStreaming(w, &req, scenario == "malformed-chunk")
		return
	}

	text := replyText(&req)
	resp := chatResponse{
		ID:      "cmpl-mock-1",
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []chatChoice{
			{
				Index:        0,
				Message:      map[string]any{"role": "assistant", "content": text},
				FinishReason: "stop",
			},
		},
		Usage: chatUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// replyText picks a deterministic reply based on the last user message.
func replyText(req *chatRequest) string {
	last := lastUserMessage(req)
	if strings.Contains(strings.ToLower(last), "count from 1 to 5") {
		return "1, 2, 3, 4, 5"
	}
	return "Hello, nice day!"
}

func lastUserMessage(req *chatRequest) string {
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i]["role"] == "user" {
			if content, ok := req.Messages[i]["content"].(string); ok {
				return content
			}
		}
	}
	return ""
}

// --- Streaming ---

func handleStreaming(w http.ResponseWriter, req *chatRequest, injectMalformed bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	words := strings.SplitAfter(replyText(req), " ")
	for i, word := range words {
		if injectMalformed && i == 1 {
			// A well-behaved client skips this line and keeps going.
			fmt.Fprint(w, "data: not-json\n\n")
			flusher.Flush()
		}
		writeChunk(w, word, "final")
		flusher.Flush()
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

func writeChunk(w http.ResponseWriter, content, channel string) {
	payload, _ := json.Marshal(map[string]string{
		"content": content,
		"channel": channel,
	})
	fmt.Fprintf(w, "data: %s\n\n", payload)
}

// --- Balance & usage ---

func handleBalance(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"balance":  42.5,
		"currency": "USD",
	})
}

func handleUsageReport(w http.ResponseWriter, r *http.Request) {
	days := 30
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 365 {
			writeNestedError(w, http.StatusBadRequest, "days must be between 1 and 365")
			return
		}
		days = parsed
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"days":              days,
		"total_requests":    128,
		"total_tokens":      54321,
		"prompt_tokens":     34321,
		"completion_tokens": 20000,
	})
}
