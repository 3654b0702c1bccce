package site

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load(os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if cfg.Title != "Inkwell Example" {
		t.Errorf("Unexpected title %q", cfg.Title)
	}
	if cfg.Slogan != "Notes from the workshop" {
		t.Errorf("Unexpected slogan %q", cfg.Slogan)
	}
	if cfg.SiteURL != "https://blog.example.com" {
		t.Errorf("Unexpected site URL %q", cfg.SiteURL)
	}
	if !cfg.Social.Feed || cfg.Social.GitHub == "" || cfg.Social.Email != "blog@example.com" {
		t.Errorf("Unexpected social settings %#v", cfg.Social)
	}
	if cfg.HomepageFilter.MaxPosts != 3 {
		t.Errorf("Unexpected filter %#v", cfg.HomepageFilter)
	}
	if len(cfg.HomepageFilter.ExcludeTags) != 1 || cfg.HomepageFilter.ExcludeTags[0] != "meta" {
		t.Errorf("Unexpected exclude tags %v", cfg.HomepageFilter.ExcludeTags)
	}
	if cfg.AnalyticsID != "XYZ-123" || !cfg.SearchEnabled {
		t.Errorf("Unexpected analytics/search settings %#v", cfg)
	}
	if time.Duration(cfg.Expires) != 10*time.Minute {
		t.Errorf("Unexpected expires %s", cfg.Expires)
	}
	if time.Duration(cfg.StaticExpires) != time.Hour {
		t.Errorf("Unexpected static expires %s", cfg.StaticExpires)
	}
	if cfg.Headers["X-Frame-Options"] != "DENY" {
		t.Errorf("Unexpected headers %v", cfg.Headers)
	}
}

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(os.DirFS("testdata/nosuchdir"))
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if cfg.Title == "" || cfg.SiteURL == "" {
		t.Errorf("Expected defaults for a missing config, got %#v", cfg)
	}
}
