package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds the validated metadata of a blog post.
type FrontMatter struct {
	Title       string    // Title of the post
	Description string    // Short summary used in listings and meta tags
	Date        time.Time // Date the post appears
	Tags        []string  // Tags in authored order, never nil after validation
	Draft       bool      // Draft posts are excluded from listings
	Image       string    // Path to a cover image
}

// Format identifies the markup used for a front matter block.
type Format int

const (
	// None means the document has no front matter block.
	None Format = iota
	// TOML front matter is delimited by "+++" lines.
	TOML
	// YAML front matter is delimited by "---" lines.
	YAML
)

var (
	// tomlRegexp is the regular expression used to split out TOML front matter.
	tomlRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)
	// yamlRegexp is the regular expression used to split out YAML front matter.
	yamlRegexp = regexp.MustCompile(`(?m)^\s*---\s*$`)
)

// Extract splits the front matter and Markdown content, reporting
// which markup the front matter uses.
func Extract(x []byte) (fm, r []byte, format Format) {
	for _, try := range []struct {
		re     *regexp.Regexp
		format Format
	}{
		{tomlRegexp, TOML},
		{yamlRegexp, YAML},
	} {
		subs := try.re.Split(string(x), 3)
		if len(subs) != 3 {
			continue
		}
		if s := strings.TrimSpace(subs[0]); len(s) > 0 {
			continue
		}
		return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2])), try.format
	}
	return nil, x, None
}

// Parse extracts the front matter from a document, validates it against the
// post schema, and returns the validated front matter along with the Markdown
// body. A document without a front matter block returns a zero FrontMatter
// and Format None; a malformed or invalid block returns an error.
func Parse(x []byte) (FrontMatter, []byte, Format, error) {
	fmb, body, format := Extract(x)
	if format == None {
		return FrontMatter{}, body, None, nil
	}
	raw := make(map[string]any)
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(fmb, &raw)
	case YAML:
		err = yaml.Unmarshal(fmb, &raw)
	}
	if err != nil {
		return FrontMatter{}, body, format, fmt.Errorf("parse front matter: %w", err)
	}
	fm, err := Validate(raw)
	if err != nil {
		return FrontMatter{}, body, format, err
	}
	return fm, body, format, nil
}
