package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const ocrPrompt = `Extract the fields from this identity document image.
Respond with a single JSON object mapping snake_case field names
(full_name, id_number, dob, nationality, ...) to string values.
Only include fields actually visible on the document.`

// OpenAIProvider implements OCR via vision chat, STT via Whisper, and TTS
// via the speech endpoint.
type OpenAIProvider struct {
	client      *openai.Client
	visionModel string
}

func NewOpenAIProvider(apiKey, visionModel string) *OpenAIProvider {
	return &OpenAIProvider{
		client:      openai.NewClient(apiKey),
		visionModel: visionModel,
	}
}

func (p *OpenAIProvider) ExtractIDFields(ctx context.Context, image []byte) (OCRResult, error) {
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(image)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: ocrPrompt},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL}},
				},
			},
		},
	})
	if err != nil {
		return OCRResult{}, fmt.Errorf("ocr chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return OCRResult{}, fmt.Errorf("ocr chat completion: no choices")
	}

	content := resp.Choices[0].Message.Content
	fields, err := parseOCRFields(content)
	if err != nil {
		return OCRResult{}, fmt.Errorf("parse ocr fields: %w", err)
	}
	return OCRResult{Fields: fields, RawText: content}, nil
}

func (p *OpenAIProvider) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	resp, err := p.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: "audio.wav",
		Reader:   bytes.NewReader(audio),
		Language: primarySubtag(language),
	})
	if err != nil {
		return "", fmt.Errorf("transcription: %w", err)
	}
	return resp.Text, nil
}

func (p *OpenAIProvider) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	resp, err := p.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          openai.VoiceAlloy,
		ResponseFormat: openai.SpeechResponseFormatWav,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis: %w", err)
	}
	defer resp.Close()

	wav, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}
	return wav, nil
}

// parseOCRFields pulls the JSON object out of a model reply that may be
// wrapped in a markdown code fence.
func parseOCRFields(content string) (map[string]string, error) {
	s := strings.TrimSpace(content)
	if i := strings.Index(s, "{"); i >= 0 {
		if j := strings.LastIndex(s, "}"); j > i {
			s = s[i : j+1]
		}
	}

	fields := map[string]string{}
	if err := json.Unmarshal([]byte(s), &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// primarySubtag maps "en-US" style tags to the bare language code Whisper
// expects.
func primarySubtag(language string) string {
	lang, _, _ := strings.Cut(language, "-")
	return lang
}
