package sitefs

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"path"
	"strings"
	"time"

	"github.com/inkwell-blog/inkwell/content"
	"github.com/russross/blackfriday/v2"
)

// pathToMarkdown takes an endpoint path and converts it into the path of
// the associated Markdown source.
func pathToMarkdown(filename string) string {
	// check for folder - if so, add index.md
	if strings.HasSuffix(filename, "/") {
		filename += "index.md"
	}
	filename = path.Clean(filename)
	// removing leading / so we find it on the file system
	filename = strings.TrimPrefix(filename, "/")
	// make sure the extension is present
	if ext := path.Ext(filename); ext == ".html" {
		filename = strings.TrimSuffix(filename, ext) + ".md"
	} else if ext == "" {
		filename += ".md"
	}
	return filename
}

// renderMarkdown renders the Markdown for the given file and returns its
// validated front matter.
func (vfs *FS) renderMarkdown(filename string) (*content.FrontMatter, template.HTML, time.Time, error) {
	var modTime time.Time
	filename = pathToMarkdown(filename)
	s, err := fs.Stat(vfs.fs, filename)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("renderMarkdown: %w", err)
	}
	b, err := fs.ReadFile(vfs.fs, filename)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("renderMarkdown: %w", err)
	}
	fm, body, _, err := content.Parse(b)
	if err != nil {
		return nil, "", modTime, fmt.Errorf("renderMarkdown %s: %w", filename, err)
	}
	md := template.HTML(blackfriday.Run(body, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)))
	return &fm, md, s.ModTime(), nil
}

// md converts the given Markdown file to HTML and is used in templates.
func (vfs *FS) md(filename string) template.HTML {
	_, md, _, err := vfs.renderMarkdown(filename)
	if err != nil {
		log.Printf("md: %s", err)
		return ""
	}
	return md
}

// fm returns front matter for the given file and is used in templates.
func (vfs *FS) fm(filename string) *content.FrontMatter {
	fm, _, _, err := vfs.renderMarkdown(filename)
	if err != nil {
		log.Printf("fm: %s", err)
		return nil
	}
	return fm
}

// posts scans the content collection and applies the homepage filter. It is
// used in templates; a schema violation anywhere in the collection fails
// the render.
func (vfs *FS) posts() ([]content.Post, error) {
	posts, err := content.Scan(vfs.fs, content.CollectionDir)
	if err != nil {
		return nil, err
	}
	return vfs.cfg.HomepageFilter.Select(posts), nil
}

// allPosts scans the content collection without the homepage filter.
func (vfs *FS) allPosts() ([]content.Post, error) {
	return content.Scan(vfs.fs, content.CollectionDir)
}
