package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vaidya/internal/cache"
	"vaidya/internal/intake"
)

// ErrEmptyText reports that there was nothing to synthesize.
var ErrEmptyText = errors.New("no text to synthesize")

// MaxTextLen is the hard cap on synthesized text, in characters. Longer
// input is truncated before submission to respect provider limits.
const MaxTextLen = 500

// MimeType of the synthesized audio.
const MimeType = "audio/mpeg"

// Synthesizer converts text into spoken MP3 audio via the Google Translate
// TTS endpoint. Results are memoized per process on (truncatedText, language).
type Synthesizer struct {
	baseURL string
	client  *http.Client
	memo    *cache.Memo[[]byte]
}

// New creates a Synthesizer against the given TTS endpoint.
func New(baseURL string) *Synthesizer {
	return &Synthesizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		memo:    cache.NewMemo[[]byte](),
	}
}

// Synthesize returns a complete MP3 byte buffer for the text, truncated to
// MaxTextLen characters.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, lang intake.Language) ([]byte, error) {
	text = Truncate(strings.TrimSpace(text))
	if text == "" {
		return nil, ErrEmptyText
	}

	code := lang.TTSCode()
	key := code + "\x00" + text
	return s.memo.Do(key, func() ([]byte, error) {
		return s.fetch(ctx, text, code)
	})
}

func (s *Synthesizer) fetch(ctx context.Context, text, langCode string) ([]byte, error) {
	startTime := time.Now()

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", langCode)
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send TTS request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TTS response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[TTS] API error: status %d, lang %s", resp.StatusCode, langCode)
		return nil, fmt.Errorf("TTS endpoint returned status %d", resp.StatusCode)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("TTS endpoint returned empty audio")
	}

	log.Printf("[TTS] Synthesis successful: lang=%s, text=%d chars, audio=%d bytes, duration=%v",
		langCode, len(text), len(body), time.Since(startTime))
	return body, nil
}

// Truncate caps text at MaxTextLen characters without splitting a rune.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxTextLen {
		return text
	}
	return string(runes[:MaxTextLen])
}
