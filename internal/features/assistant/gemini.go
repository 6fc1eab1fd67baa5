// Package assistant: gemini.go implements Collaborator on the Gemini API.
package assistant

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// GeminiConfig selects the models used for each call.
type GeminiConfig struct {
	APIKey     string
	ChatModel  string
	ScanModel  string
	ImageModel string
	Timeout    time.Duration
}

// Gemini talks to the Gemini API through the genai SDK.
type Gemini struct {
	models  *genai.Models
	cfg     GeminiConfig
	timeout time.Duration
}

// NewGemini creates the client. It does not call the API.
func NewGemini(ctx context.Context, cfg GeminiConfig) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Gemini{models: client.Models, cfg: cfg, timeout: timeout}, nil
}

// Chat answers as the Xallet strategist.
func (g *Gemini) Chat(ctx context.Context, prompt, lang, currency string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.8),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](4000),
		},
	}
	resp, err := g.models.GenerateContent(ctx, g.cfg.ChatModel, genai.Text(strategistPrompt(prompt, lang, currency)), config)
	if err != nil {
		return "", g.fail("chat", err)
	}
	text := resp.Text()
	if text == "" {
		return "", g.fail("chat", &Failure{Kind: KindMalformed, Err: errEmptyResponse})
	}
	return text, nil
}

// ExtractExpense reads merchant, amount, date and category off a receipt.
func (g *Gemini) ExtractExpense(ctx context.Context, image []byte, mime string) (ExpenseDraft, error) {
	var draft ExpenseDraft
	err := g.extract(ctx, "expense", image, mime, expensePrompt, expenseSchema, &draft)
	return draft, err
}

// ExtractIncome reads source, amount, date and category off an income document.
func (g *Gemini) ExtractIncome(ctx context.Context, image []byte, mime string) (IncomeDraft, error) {
	var draft IncomeDraft
	err := g.extract(ctx, "income", image, mime, incomePrompt, incomeSchema, &draft)
	return draft, err
}

func (g *Gemini) extract(ctx context.Context, op string, image []byte, mime, prompt string, schema *genai.Schema, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mime),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	resp, err := g.models.GenerateContent(ctx, g.cfg.ScanModel, contents, config)
	if err != nil {
		return g.fail(op, err)
	}
	if err := decodeDraft(resp.Text(), out); err != nil {
		return g.fail(op, err)
	}
	return nil
}

// GenerateImage renders a studio picture.
func (g *Gemini) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (Image, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	opts = opts.Normalize()
	text := fmt.Sprintf("%s\n\nRender at %s resolution with a %s aspect ratio.", prompt, opts.Size, opts.AspectRatio)
	resp, err := g.models.GenerateContent(ctx, g.cfg.ImageModel, genai.Text(text), nil)
	if err != nil {
		return Image{}, g.fail("image", err)
	}
	img, err := firstImage(resp)
	if err != nil {
		return Image{}, g.fail("image", err)
	}
	return img, nil
}

// EditImage redraws a reference photo following prompt.
func (g *Gemini) EditImage(ctx context.Context, image []byte, mime, prompt string) (Image, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mime),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	resp, err := g.models.GenerateContent(ctx, g.cfg.ImageModel, contents, nil)
	if err != nil {
		return Image{}, g.fail("edit", err)
	}
	img, err := firstImage(resp)
	if err != nil {
		return Image{}, g.fail("edit", err)
	}
	return img, nil
}

func (g *Gemini) fail(op string, err error) error {
	failure := Classify(op, err)
	log.WithFields(log.Fields{
		"op":    op,
		"error": err,
	}).Warn("Assistant call failed")
	return failure
}

// firstImage returns the first inline image of the first candidate.
func firstImage(resp *genai.GenerateContentResponse) (Image, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Image{}, &Failure{Kind: KindMalformed, Err: errEmptyResponse}
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return Image{Data: part.InlineData.Data, MIME: part.InlineData.MIMEType}, nil
		}
	}
	return Image{}, &Failure{Kind: KindMalformed, Err: errNoImage}
}
