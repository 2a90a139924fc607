package service

import (
	"context"
)

// Generator produces text from a prompt. *gemini.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// RelayService forwards an authenticated caller's prompt to the inference
// provider. One synchronous round trip per call; all policy (auth, input
// validation) lives in the handler/middleware layer above.
type RelayService struct {
	generator Generator
}

func NewRelayService(generator Generator) *RelayService {
	return &RelayService{generator: generator}
}

// Relay sends the prompt upstream and returns the generated text
func (s *RelayService) Relay(ctx context.Context, prompt string) (string, error) {
	return s.generator.Generate(ctx, prompt)
}
