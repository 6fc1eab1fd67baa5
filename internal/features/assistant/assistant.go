// Package assistant is the boundary to the generative-AI collaborator:
// the strategist chat, receipt and income extraction, and image studio.
// Every failure is returned as *Failure so callers can tell an invalid key
// from a timeout without inspecting provider errors.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Collaborator is implemented by Gemini and by Disabled.
type Collaborator interface {
	Chat(ctx context.Context, prompt, lang, currency string) (string, error)
	ExtractExpense(ctx context.Context, image []byte, mime string) (ExpenseDraft, error)
	ExtractIncome(ctx context.Context, image []byte, mime string) (IncomeDraft, error)
	GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (Image, error)
	EditImage(ctx context.Context, image []byte, mime, prompt string) (Image, error)
}

// Amount is a non-negative money amount that accepts a JSON number or a
// numeric string. Anything else decodes to 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	} else {
		raw = string(data)
	}

	raw = strings.TrimSpace(strings.NewReplacer(",", "", "$", "", "¥", "").Replace(raw))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*a = Amount(v)
	return nil
}

// ExpenseDraft is what the collaborator read off a receipt. Empty fields
// are filled with defaults when the expense is logged.
type ExpenseDraft struct {
	Merchant string `json:"merchant"`
	Amount   Amount `json:"amount"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// IncomeDraft is what the collaborator read off a payslip or transfer.
type IncomeDraft struct {
	Source   string `json:"source"`
	Amount   Amount `json:"amount"`
	Date     string `json:"date"`
	Category string `json:"category"`
}

// ImageOptions controls the studio output.
type ImageOptions struct {
	Size        string // 1K, 2K or 4K
	AspectRatio string // 1:1, 16:9, 9:16, 4:3 or 3:4
}

var (
	imageSizes   = []string{"1K", "2K", "4K"}
	aspectRatios = []string{"1:1", "16:9", "9:16", "4:3", "3:4"}
)

// Normalize replaces unsupported values with the defaults.
func (o ImageOptions) Normalize() ImageOptions {
	o.Size = strings.ToUpper(strings.TrimSpace(o.Size))
	if !oneOf(imageSizes, o.Size) {
		o.Size = imageSizes[0]
	}
	o.AspectRatio = strings.TrimSpace(o.AspectRatio)
	if !oneOf(aspectRatios, o.AspectRatio) {
		o.AspectRatio = aspectRatios[0]
	}
	return o
}

// Image is a generated picture.
type Image struct {
	Data []byte
	MIME string
}

func oneOf(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// decodeDraft parses a JSON object answer. Models sometimes wrap JSON in a
// markdown fence even when asked not to.
func decodeDraft(text string, v any) error {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return &Failure{Kind: KindMalformed, Err: errEmptyResponse}
	}
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return &Failure{Kind: KindMalformed, Err: err}
	}
	return nil
}
