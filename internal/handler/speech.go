package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kioskpoint/backend/pkg/model"
)

// silentWAV is a complete 44-byte WAV file with an empty data chunk, served
// when no TTS backend is reachable so the kiosk audio player never errors.
var silentWAV = []byte{
	'R', 'I', 'F', 'F', 0x24, 0x00, 0x00, 0x00,
	'W', 'A', 'V', 'E', 'f', 'm', 't', ' ',
	0x10, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x44, 0xAC, 0x00, 0x00, 0x88, 0x58, 0x01, 0x00,
	0x02, 0x00, 0x10, 0x00, 'd', 'a', 't', 'a',
	0x00, 0x00, 0x00, 0x00,
}

// SpeechToText accepts an audio file plus an optional language form field and
// returns the transcript, or a dummy transcript when STT is unavailable.
func (h *Handler) SpeechToText(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	language := c.DefaultPostForm("language", "en-US")

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer f.Close()

	audio, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}

	transcript, err := h.STT.Transcribe(c.Request.Context(), audio, language)
	if err != nil {
		h.Logger.Sugar().Warnw("stt failed, serving dummy transcript", "filename", fileHeader.Filename, "err", err)
		transcript = fmt.Sprintf("This is a dummy transcript of the audio (could not perform real STT: %s)", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript": transcript,
		"language":   language,
		"filename":   fileHeader.Filename,
	})
}

// TextToSpeech converts text to a WAV audio stream, falling back to a fixed
// silent WAV when synthesis is unavailable.
func (h *Handler) TextToSpeech(c *gin.Context) {
	var req model.TextToSpeechRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	wav, err := h.TTS.Synthesize(c.Request.Context(), req.Text, req.Language)
	if err != nil || len(wav) == 0 {
		if err != nil {
			h.Logger.Sugar().Warnw("tts failed, serving silent wav", "err", err)
		}
		wav = silentWAV
	}

	c.Data(http.StatusOK, "audio/wav", wav)
}
