// Package ai wraps the external OCR, speech-to-text, and text-to-speech
// capabilities behind narrow interfaces. Every provider failure surfaces as
// an error the handlers convert into a best-effort fallback payload; nothing
// here is ever fatal to a request.
package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by providers that are not configured.
var ErrUnavailable = errors.New("ai provider not configured")

// OCRResult holds fields extracted from an ID document.
type OCRResult struct {
	Fields  map[string]string
	RawText string
}

type OCRProvider interface {
	// ExtractIDFields reads an ID card/passport image and returns the
	// fields it could recognize.
	ExtractIDFields(ctx context.Context, image []byte) (OCRResult, error)
}

type SpeechToText interface {
	// Transcribe converts audio bytes to text. language is a BCP 47 tag
	// such as "en-US".
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

type TextToSpeech interface {
	// Synthesize converts text to WAV audio bytes.
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

// Provider bundles the three capabilities; both implementations in this
// package satisfy it.
type Provider interface {
	OCRProvider
	SpeechToText
	TextToSpeech
}

// New returns the OpenAI-backed provider when an API key is configured and
// the stub otherwise.
func New(apiKey, visionModel string) Provider {
	if apiKey == "" {
		return &StubProvider{}
	}
	return NewOpenAIProvider(apiKey, visionModel)
}
