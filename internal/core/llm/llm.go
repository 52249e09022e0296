// Package llm defines the text-generation client interface.
package llm

import "context"

// Generator is the port to the text-generation capability. Given a fully
// assembled prompt it returns the generated text, fallibly and with latency.
type Generator interface {
	// Generate produces text for the given prompt. Failures are reported
	// as *Error values.
	Generate(ctx context.Context, prompt string) (string, error)

	// Ping checks if the generation backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the client.
	Close() error
}
