package notes

import "context"

// AIClient abstracts the OpenAI client for easier mocking in unit
// tests. Only the methods the handler actually calls are listed.
type AIClient interface {
	GenerateNotes(ctx context.Context, prompt, source string, temperature float64) (string, error)
	StreamNotes(ctx context.Context, prompt, source string, temperature float64) (<-chan string, error)
}
