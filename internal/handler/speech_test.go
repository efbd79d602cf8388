package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func multipartFile(t *testing.T, path, field, filename string, content []byte, extra map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	for k, v := range extra {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSTTFallbackDummyTranscript(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newTestRouter(h)

	req := multipartFile(t, "/api/speech/stt", "file", "visit.wav", []byte("fake-audio"), map[string]string{"language": "de-DE"})
	w := doRequest(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !strings.Contains(body["transcript"], "dummy transcript") {
		t.Errorf("expected dummy transcript, got %q", body["transcript"])
	}
	if body["language"] != "de-DE" {
		t.Errorf("language not echoed: %q", body["language"])
	}
	if body["filename"] != "visit.wav" {
		t.Errorf("filename not echoed: %q", body["filename"])
	}
}

func TestSTTMissingFile(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newTestRouter(h)

	req := httptest.NewRequest("POST", "/api/speech/stt", nil)
	w := doRequest(r, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTTSFallbackSilentWAV(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newTestRouter(h)

	w := doRequest(r, postJSON(t, "/api/speech/tts", map[string]any{
		"text": "Welcome to the office",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/wav" {
		t.Errorf("expected audio/wav, got %q", ct)
	}
	body := w.Body.Bytes()
	if len(body) != 44 {
		t.Fatalf("expected 44-byte silent WAV, got %d bytes", len(body))
	}
	if !bytes.Equal(body[:4], []byte("RIFF")) || !bytes.Equal(body[8:12], []byte("WAVE")) {
		t.Errorf("fallback is not a WAV header: %x", body[:12])
	}
}

func TestTTSRequiresText(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newTestRouter(h)

	w := doRequest(r, postJSON(t, "/api/speech/tts", map[string]any{"language": "en"}))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing text, got %d", w.Code)
	}
}

func TestOCRFallbackDemoFields(t *testing.T) {
	h, _, _ := newTestHandler()
	r := newTestRouter(h)

	req := multipartFile(t, "/api/ocr/upload-id", "file", "passport.png", []byte("fake-image"), nil)
	w := doRequest(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Status    string            `json:"status"`
		OCRFields map[string]string `json:"ocr_fields"`
		Filename  string            `json:"filename"`
		Message   string            `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Status != "fallback" {
		t.Errorf("expected fallback status, got %q", body.Status)
	}
	if body.OCRFields["full_name"] != "Demo Person" {
		t.Errorf("expected demo fields, got %v", body.OCRFields)
	}
	if body.Filename != "passport.png" {
		t.Errorf("filename not echoed: %q", body.Filename)
	}
	if body.Message == "" {
		t.Error("expected failure message in fallback payload")
	}
}
