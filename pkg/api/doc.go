// Package api defines the wire-level data model of the Orangic API:
// chat messages, completion results, streaming chunks, and the typed
// error taxonomy shared by all client operations.
package api
