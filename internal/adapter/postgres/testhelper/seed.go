package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/landing-builder-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "owner-" + suffix + "@example.com",
		DisplayName:  "Owner " + suffix,
		PasswordHash: "seed-hash-" + suffix,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastSeenAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, display_name, password_hash, created_at, updated_at, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt, user.UpdatedAt, user.LastSeenAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedSite inserts a site owned by ownerID with the given status.
// A published site also gets its public copy.
func SeedSite(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, status domain.SiteStatus) domain.Site {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	prompt := domain.DefaultPrompt()
	prompt.Title = "Site " + suffix
	prompt.BusinessType = "bakery"

	site := domain.Site{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     prompt.Title,
		Prompt:    prompt,
		HTML:      "<html><body>" + suffix + "</body></html>",
		Meta:      domain.SiteMeta{SEOTitle: prompt.Title, SEODescription: "seed " + suffix},
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == domain.SiteStatusPublished {
		site.PublishedAt = &now
	}

	promptJSON, err := json.Marshal(site.Prompt)
	if err != nil {
		t.Fatalf("testhelper: SeedSite marshal prompt: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO sites (id, owner_id, title, prompt, html, seo_title, seo_desc, status, created_at, updated_at, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		site.ID, site.OwnerID, site.Title, promptJSON, site.HTML, site.Meta.SEOTitle, site.Meta.SEODescription,
		string(site.Status), site.CreatedAt, site.UpdatedAt, site.PublishedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSite insert site: %v", err)
	}

	if status == domain.SiteStatusPublished {
		_, err = pool.Exec(ctx,
			`INSERT INTO public_sites (id, owner_id, title, html, seo_title, seo_desc, status, published_at)
			 VALUES ($1, $2, $3, $4, $5, $6, 'published', $7)`,
			site.ID, site.OwnerID, site.Title, site.HTML, site.Meta.SEOTitle, site.Meta.SEODescription, now,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedSite insert public site: %v", err)
		}
	}

	return site
}
