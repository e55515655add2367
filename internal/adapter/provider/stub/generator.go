// Package stub is an offline page generator for local development and tests.
package stub

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

// Generator renders a fixed template from the prompt. Output is deterministic.
type Generator struct{}

func New() *Generator { return &Generator{} }

func (g *Generator) Generate(ctx context.Context, p domain.SitePrompt) (*domain.GeneratedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := html.EscapeString(p.Title)
	var features strings.Builder
	for _, f := range strings.Split(p.Features, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		fmt.Fprintf(&features, "      <li class=\"p-4 rounded shadow\">%s</li>\n", html.EscapeString(f))
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>%s</title>
  <script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
  <section id="hero" class="p-12 text-center">
    <h1 class="text-4xl font-bold">%s</h1>
    <p>%s for %s</p>
  </section>
  <section id="features" class="p-8">
    <ul class="grid gap-4">
%s    </ul>
  </section>
  <footer id="cta" class="p-8 text-center">
    <a href="#" class="px-6 py-3 rounded">%s</a>
  </footer>
</body>
</html>
`, title, title,
		html.EscapeString(p.BusinessType), html.EscapeString(p.TargetAudience),
		features.String(), html.EscapeString(p.CTAText))

	return &domain.GeneratedPage{
		HTML: doc,
		Meta: domain.SiteMeta{
			SEOTitle:       p.Title,
			SEODescription: fmt.Sprintf("%s: %s for %s.", p.Title, p.BusinessType, p.TargetAudience),
		},
	}, nil
}
