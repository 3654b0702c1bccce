/*
Package sitefs presents a blog content folder as a virtual file system of
rendered web pages. Markdown documents with front matter become HTML pages,
the site configuration file and template folder are hidden from view, and
two generated documents appear at the root: "sitemap.xml", and "feed.xml"
when the site configuration enables the syndication feed.

A hidden file "inkwell.cfg" at the root holds the site configuration in TOML
(see the site package). A folder "posts" holds the content collection: every
Markdown file there must carry front matter that passes the post schema, or
the site does not build. Draft posts and posts dated in the future are
invisible.

Front matter is delimited by "+++" (TOML) or "---" (YAML) lines:

	+++
	title = "My glorious post"
	date = 2025-01-01
	tags = ["go", "web"]
	+++
	# Heading
	Body in [Markdown](https://en.wikipedia.org/wiki/Markdown).

Pages outside the posts collection may omit front matter entirely; they
render with the file name as title.

Templates live in a "template" folder at the root as html/template files. A
template named "default" renders Markdown pages; a built-in one is used when
the folder is absent. Templates receive the front matter, page information,
rendered content, and the site configuration, plus helper functions such as
dir, sortbytime, posts, and tagset.

To assist web servers, 404.md and 500.md files at the root render to
404.html and 500.html but stay out of the sitemap and directory helpers.
*/
package sitefs

import (
	"errors"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/inkwell-blog/inkwell/site"
)

// FS provides a virtual view of a content folder suitable for serving or
// exporting as a web site.
type FS struct {
	fs       fs.FS
	cfg      *site.Config
	tpl      *template.Template
	tplMutex sync.RWMutex
}

// New returns a new FS that presents a rendered view of innerFS. The site
// configuration and templates are loaded once, up front.
func New(innerFS fs.FS) (*FS, error) {
	vfs := FS{
		fs: innerFS,
	}
	cfg, err := site.Load(innerFS)
	if err != nil {
		return nil, err
	}
	vfs.cfg = cfg
	_, err = vfs.loadTemplates()
	if err != nil {
		return nil, err
	}
	return &vfs, nil
}

// Config returns the site configuration loaded from the content root.
func (vfs *FS) Config() *site.Config {
	return vfs.cfg
}

// Open opens the named file.
//
// Requests for ".html" endpoints that have no physical file resolve to the
// matching Markdown source rendered through the templates. The Markdown
// sources themselves, the configuration file, the template folder, and
// dotfiles are hidden. A post whose front matter fails the schema turns
// into an open error so that a full-site walk fails the build.
func (vfs *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	// Don't show hidden or special files, nor raw Markdown sources.
	if isHiddenFile(name) || (name != "." && containsSpecialFile(name)) || path.Ext(name) == ".md" {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	// Generated documents.
	if name == "sitemap.xml" {
		return vfs.newSitemapFile(name)
	}
	if name == "feed.xml" {
		if !vfs.cfg.Social.Feed {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return vfs.newFeedFile(name)
	}

	f, err := vfs.fs.Open(name)
	if err != nil {
		// For .html files that don't exist, render the matching Markdown.
		if errors.Is(err, fs.ErrNotExist) && path.Ext(name) == ".html" {
			mdName := strings.TrimSuffix(name, ".html") + ".md"
			mf, err2 := vfs.fs.Open(mdName)
			if err2 == nil {
				defer mf.Close()
				return vfs.newMarkdownFile(mf, name)
			}
		}
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Directories need a virtual view so listings show rendered names.
	if fi.IsDir() {
		// don't close f; it backs ReadDir
		return &virtualDir{File: f, vfs: vfs, path: name}, nil
	}
	return f, nil
}
