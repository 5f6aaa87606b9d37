package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/infra"
)

// TranslateHandler fronts the Groq chat-completions API with a
// translation-shaped endpoint. The model is instructed to return only the
// translation, and its output is normalized anyway because instructions
// are not guarantees.
type TranslateHandler struct {
	groq   *infra.GroqClient
	apiKey string
}

func NewTranslateHandler(groq *infra.GroqClient, apiKey string) *TranslateHandler {
	return &TranslateHandler{groq: groq, apiKey: apiKey}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

func (h *TranslateHandler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, apierror.New(`"text" field is required and must be a string`))
		return
	}
	if req.SourceLang == "" {
		req.SourceLang = "uz"
	}
	if req.TargetLang == "" {
		req.TargetLang = "ru"
	}

	if h.apiKey == "" {
		c.JSON(http.StatusInternalServerError, apierror.New("server not configured: GROQ_API_KEY is missing"))
		return
	}

	raw, err := h.groq.Complete(c.Request.Context(), translatePrompt(req.Text, req.SourceLang, req.TargetLang))
	if err != nil {
		log.Error().Err(err).Msg("groq completion failed")
		c.JSON(http.StatusInternalServerError, apierror.New("translation backend error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"translated": cleanupTranslation(raw)})
}

func translatePrompt(text, sourceLang, targetLang string) string {
	return strings.TrimSpace(fmt.Sprintf(`
You are a translation engine.

Translate the following text from %s to %s.

Return ONLY the translated text.
Do NOT add quotes.
Do NOT add comments, explanations, examples, or any additional text.
Just return the translated word or phrase.

Text:
%s
`, sourceLang, targetLang, text))
}

// cleanupTranslation normalizes a chatty model reply into a single short
// phrase: first line only, surrounding quote characters stripped, and
// anything past 120 runes cut at the first period when one falls inside
// the limit.
func cleanupTranslation(raw string) string {
	line, _, _ := strings.Cut(raw, "\n")
	line = strings.TrimSpace(line)
	line = strings.Trim(line, `"'«»„“”`)

	if runes := []rune(line); len(runes) > 120 {
		if dot := strings.IndexRune(line, '.'); dot > 0 && len([]rune(line[:dot])) < 120 {
			line = line[:dot]
		} else {
			line = string(runes[:120])
		}
	}
	return strings.TrimSpace(line)
}
