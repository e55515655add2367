// Package anthropic generates landing pages with the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/landing-builder-backend/internal/config"
	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const systemInstruction = `You are an expert web developer and UI/UX designer.
Your task is to generate a complete, responsive, single-page landing page based on the user's requirements.

Rules:
1. Output valid HTML5 with Tailwind CSS classes via CDN.
2. Do NOT use external CSS files. Use <script src="https://cdn.tailwindcss.com"></script> in the head.
3. Use FontAwesome for icons: <link rel="stylesheet" href="https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.0.0/css/all.min.css" />
4. Use placeholder images from https://picsum.photos/width/height where appropriate.
5. The design must be modern, clean, and mobile-responsive.
6. Include a Hero section, Features section, and a Call to Action footer at minimum.
7. Ensure high contrast and accessibility.

Output ONLY a JSON object with exactly these keys, no markdown, no explanations:
{
  "html": "<the full HTML5 document including <html>, <head> and <body> tags>",
  "seoTitle": "<a catchy SEO title for the page>",
  "seoDescription": "<a meta description for search engines>"
}`

// Generator produces pages from a SitePrompt with a single model call.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Generator. Retries are disabled unless cfg.MaxRetries is set.
func New(cfg config.GeneratorConfig, logger *slog.Logger, opts ...option.RequestOption) *Generator {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(cfg.MaxRetries),
		option.WithRequestTimeout(cfg.Timeout),
	}
	return &Generator{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("provider", "anthropic"),
	}
}

// Generate sends the prompt and parses the JSON page out of the reply.
func (g *Generator) Generate(ctx context.Context, prompt domain.SitePrompt) (*domain.GeneratedPage, error) {
	start := time.Now()

	msg, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemInstruction}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(prompt))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic.Generate: messages api: %w", err)
	}

	if len(msg.Content) == 0 {
		return nil, errors.New("anthropic.Generate: empty response")
	}

	page, err := parsePage(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("anthropic.Generate: %w", err)
	}

	g.log.InfoContext(ctx, "page generated",
		slog.String("model", g.model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("duration", time.Since(start)),
	)
	return page, nil
}

func buildPrompt(p domain.SitePrompt) string {
	return fmt.Sprintf(`Create a landing page for a %s business named %q.
Target Audience: %s.
Color Theme: %s.
Key Features/Sections: %s.
Main CTA Button Text: %s.

Return a JSON object with the HTML string, a recommended SEO title, and a short SEO description.`,
		p.BusinessType, p.Title, p.TargetAudience, p.ColorTheme, p.Features, p.CTAText)
}

type pageResponse struct {
	HTML           string `json:"html"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

// parsePage decodes the model reply. An empty html field is an error.
func parsePage(text string) (*domain.GeneratedPage, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var resp pageResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	if strings.TrimSpace(resp.HTML) == "" {
		return nil, errors.New("response has no html")
	}

	return &domain.GeneratedPage{
		HTML: resp.HTML,
		Meta: domain.SiteMeta{SEOTitle: resp.SEOTitle, SEODescription: resp.SEODescription},
	}, nil
}

// extractJSON returns the text between the first { and the last }.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no JSON object found in response")
	}
	return s[start : end+1], nil
}
