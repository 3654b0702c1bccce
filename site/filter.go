package site

import (
	"strings"

	"github.com/inkwell-blog/inkwell/content"
)

// Filter selects which posts surface on the landing page.
type Filter struct {
	MaxPosts    int      `toml:"maxposts"`    // cap on the number of posts; 0 means no cap
	Tags        []string `toml:"tags"`        // when non-empty, only posts carrying one of these
	ExcludeTags []string `toml:"excludetags"` // posts carrying one of these never surface
}

// Select returns the posts that pass the filter, preserving the input order
// (posts are expected newest first). Tag matching is case-insensitive.
// A tag listed in both Tags and ExcludeTags is excluded; the deny list wins.
func (f Filter) Select(posts []content.Post) []content.Post {
	r := make([]content.Post, 0, len(posts))
	for _, p := range posts {
		if f.excluded(p) || !f.included(p) {
			continue
		}
		r = append(r, p)
		if f.MaxPosts > 0 && len(r) >= f.MaxPosts {
			break
		}
	}
	return r
}

func (f Filter) excluded(p content.Post) bool {
	for _, t := range f.ExcludeTags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

func (f Filter) included(p content.Post) bool {
	if len(f.Tags) == 0 {
		return true
	}
	for _, t := range f.Tags {
		if p.HasTag(t) {
			return true
		}
	}
	return false
}

// normalizeTag trims and lowercases a tag for comparison and display grouping.
func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

// TagSet returns the unique normalized tags across the given posts, in first
// appearance order.
func TagSet(posts []content.Post) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			n := normalizeTag(t)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			tags = append(tags, n)
		}
	}
	return tags
}
