package domain

import (
	"time"

	"github.com/google/uuid"
)

// SiteStatus is the publication state of a site.
type SiteStatus string

const (
	SiteStatusDraft     SiteStatus = "draft"
	SiteStatusPublished SiteStatus = "published"
)

func (s SiteStatus) String() string { return string(s) }

// IsValid reports whether s is a known status.
func (s SiteStatus) IsValid() bool {
	return s == SiteStatusDraft || s == SiteStatusPublished
}

// SitePrompt is the structured description a page is generated from.
type SitePrompt struct {
	Title          string `json:"title"`
	BusinessType   string `json:"businessType"`
	TargetAudience string `json:"targetAudience"`
	ColorTheme     string `json:"colorTheme"`
	Features       string `json:"features"`
	CTAText        string `json:"ctaText"`
}

// DefaultPrompt is the prompt a brand new site starts with.
func DefaultPrompt() SitePrompt {
	return SitePrompt{
		ColorTheme: "Modern Blue and White",
		Features:   "Hero Section, Services List, Testimonials, Pricing, Contact Form",
		CTAText:    "Get Started Now",
	}
}

// SiteMeta holds the SEO metadata of a generated page.
type SiteMeta struct {
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

// Site is the owner-scoped record of a landing page.
type Site struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Prompt      SitePrompt
	HTML        string
	Meta        SiteMeta
	Status      SiteStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time
}

// NewDraft returns an unsaved site for owner with the default prompt.
func NewDraft(ownerID uuid.UUID) *Site {
	return &Site{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Prompt:  DefaultPrompt(),
		Status:  SiteStatusDraft,
	}
}

func (s *Site) IsPublished() bool { return s.Status == SiteStatusPublished }

// Public builds the denormalized public copy of s.
func (s *Site) Public(publishedAt time.Time) *PublicSite {
	return &PublicSite{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Title:       s.Title,
		HTML:        s.HTML,
		Meta:        s.Meta,
		Status:      SiteStatusPublished,
		PublishedAt: publishedAt,
	}
}

// PublicSite is the world-readable copy of a published site.
// It exists only while the owning Site is published.
type PublicSite struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	Title       string     `json:"title"`
	HTML        string     `json:"html"`
	Meta        SiteMeta   `json:"meta"`
	Status      SiteStatus `json:"status"`
	PublishedAt time.Time  `json:"publishedAt"`
}

// GeneratedPage is the output of one content generation call.
type GeneratedPage struct {
	HTML string
	Meta SiteMeta
}
