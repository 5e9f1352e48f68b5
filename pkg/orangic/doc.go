// Package orangic is the Go client for the Orangic API. It handles
// request serialization, response parsing, SSE chunk streaming, and
// error mapping for the chat-completions, balance, and usage-report
// endpoints.
//
// All network operations take a context.Context and block until the
// response (or, for streams, the next chunk) is available.
package orangic
