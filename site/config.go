package site

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the site configuration file at the content root.
// It is hidden from the rendered site.
const ConfigFile = "inkwell.cfg"

// Social holds optional contact and profile links for the site author.
type Social struct {
	GitHub   string `toml:"github"`   // source code hosting profile URL
	LinkedIn string `toml:"linkedin"` // professional network profile URL
	Email    string `toml:"email"`    // contact address
	Feed     bool   `toml:"feed"`     // expose an RSS feed at /feed.xml
}

// Config contains site-wide settings from the inkwell.cfg file. It is loaded
// once and treated as read-only afterwards. Values are trusted as authored;
// there is no semantic validation here.
type Config struct {
	Title          string `toml:"title"`          // site title
	Slogan         string `toml:"slogan"`         // short tagline shown under the title
	Description    string `toml:"description"`    // longer description for meta tags
	SiteURL        string `toml:"siteurl"`        // canonical absolute URL, no trailing slash
	Social         Social `toml:"social"`         // author links
	HomepageFilter Filter `toml:"homepagefilter"` // which posts surface on the landing page
	AnalyticsID    string `toml:"analyticsid"`    // opaque id for an external analytics provider
	SearchEnabled  bool   `toml:"searchenabled"`  // toggle for the client-side search box

	Expires       Duration          `toml:"expires"`       // Expires header for rendered pages
	StaticExpires Duration          `toml:"staticexpires"` // Expires header for static assets
	Headers       map[string]string `toml:"headers"`       // extra response headers
}

// Load reads the configuration from the content root. A missing file is not
// an error; defaults apply.
func Load(fsys fs.FS) (*Config, error) {
	var cfg Config
	cfgBytes, err := fs.ReadFile(fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.setDefaults()
			return &cfg, nil
		}
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}
	err = toml.Unmarshal(cfgBytes, &cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Title == "" {
		c.Title = "Blog"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:8080"
	}
}
