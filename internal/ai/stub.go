package ai

import "context"

// StubProvider is the default when no AI backend is configured. It fails
// every call with ErrUnavailable so handlers serve their fallback payloads.
type StubProvider struct{}

func (s *StubProvider) ExtractIDFields(ctx context.Context, image []byte) (OCRResult, error) {
	return OCRResult{}, ErrUnavailable
}

func (s *StubProvider) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	return "", ErrUnavailable
}

func (s *StubProvider) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	return nil, ErrUnavailable
}
