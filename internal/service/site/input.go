package site

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

const (
	maxTitleLen    = 200
	maxShortField  = 500
	maxFeaturesLen = 2000
	maxMetaLen     = 1000
	maxHTMLBytes   = 1 << 20
)

// SaveInput is the site snapshot the caller wants persisted.
// A zero ID means the site has never been saved.
type SaveInput struct {
	ID      uuid.UUID
	Prompt  domain.SitePrompt
	HTML    string
	Meta    domain.SiteMeta
	Publish bool
}

// Validate checks field sizes. Title is not required to save a draft.
func (i SaveInput) Validate() error {
	errs := promptLengthErrors(i.Prompt)

	if len(i.HTML) > maxHTMLBytes {
		errs = append(errs, domain.FieldError{Field: "html", Message: "too large"})
	}
	if len(i.Meta.SEOTitle) > maxMetaLen {
		errs = append(errs, domain.FieldError{Field: "meta.seoTitle", Message: "too long"})
	}
	if len(i.Meta.SEODescription) > maxMetaLen {
		errs = append(errs, domain.FieldError{Field: "meta.seoDescription", Message: "too long"})
	}
	if i.Publish && strings.TrimSpace(i.HTML) == "" {
		errs = append(errs, domain.FieldError{Field: "html", Message: "required to publish"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ValidatePrompt checks a prompt before generation: title and business type
// are required, all fields are bounded.
func ValidatePrompt(p domain.SitePrompt) error {
	var errs []domain.FieldError

	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(p.BusinessType) == "" {
		errs = append(errs, domain.FieldError{Field: "businessType", Message: "required"})
	}
	errs = append(errs, promptLengthErrors(p)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func promptLengthErrors(p domain.SitePrompt) []domain.FieldError {
	var errs []domain.FieldError
	check := func(field, v string, max int) {
		if len(v) > max {
			errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
		}
	}
	check("title", p.Title, maxTitleLen)
	check("businessType", p.BusinessType, maxShortField)
	check("targetAudience", p.TargetAudience, maxShortField)
	check("colorTheme", p.ColorTheme, maxShortField)
	check("features", p.Features, maxFeaturesLen)
	check("ctaText", p.CTAText, maxShortField)
	return errs
}
