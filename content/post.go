package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// CollectionDir is the folder at the content root holding the blog post
// collection. Documents there are validated strictly against the schema.
const CollectionDir = "posts"

// Post is a published blog entry from the content collection.
type Post struct {
	FrontMatter

	Path string // slash path of the source Markdown file
	Slug string // endpoint path of the rendered page
}

// Scan walks the given content folder, validating every Markdown document
// against the post schema. Drafts and posts dated in the future are dropped
// from the result. The returned posts are sorted newest first, ties broken
// by path for a stable order.
//
// Schema violations are hard errors naming the offending document; a blog
// with a bad post header does not build.
func Scan(fsys fs.FS, dir string) ([]Post, error) {
	var posts []Post
	now := time.Now()
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && p == dir {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && p != dir {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || path.Ext(d.Name()) != ".md" || d.Name() == "index.md" {
			return nil
		}
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("scan %s: %w", p, err)
		}
		fm, _, format, err := Parse(b)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if format == None {
			return fmt.Errorf("%s: %w", p, &SchemaError{Field: "title", Reason: "is required"})
		}
		if fm.Draft || now.Before(fm.Date) {
			return nil
		}
		posts = append(posts, Post{
			FrontMatter: fm,
			Path:        p,
			Slug:        strings.TrimSuffix(p, ".md") + ".html",
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Path < posts[j].Path
		}
		return posts[j].Date.Before(posts[i].Date)
	})
	return posts, nil
}

// HasTag reports whether the post carries the given tag, ignoring case.
func (p Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(tag)) {
			return true
		}
	}
	return false
}
