package sitefs

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/inkwell-blog/inkwell/content"
	"github.com/inkwell-blog/inkwell/site"
	"github.com/russross/blackfriday/v2"
)

// PageInfo has information about the current page.
type PageInfo struct {
	Path     string // folder portion of the endpoint
	Filename string // file portion of the endpoint
}

// Pathname joins the path and filename.
func (p PageInfo) Pathname() string {
	return path.Join(p.Path, p.Filename)
}

// data is what is passed to page templates.
type data struct {
	FrontMatter content.FrontMatter // front matter from the Markdown file or defaults
	Page        PageInfo            // information about the current page
	Content     template.HTML       // rendered Markdown
	Site        *site.Config        // site configuration
}

// newMarkdownFile reads the underlying Markdown file, validates its front
// matter, renders the Markdown, and executes the "default" template,
// returning the resulting renderFile. Drafts and future-dated documents
// report fs.ErrNotExist.
func (vfs *FS) newMarkdownFile(f fs.File, pathname string) (fs.File, error) {
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}

	fm, body, format, err := content.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pathname, err)
	}
	p, bn := path.Split(pathname)
	if format == content.None {
		if requiresFrontMatter(pathname) {
			return nil, fmt.Errorf("%s: %w", pathname, &content.SchemaError{Field: "title", Reason: "is required"})
		}
		// A plain page: title from the file name, date from the source.
		fm.Title = strings.TrimSuffix(bn, path.Ext(bn))
		fm.Tags = []string{}
		if fi, serr := f.Stat(); serr == nil {
			fm.Date = fi.ModTime()
		}
	}
	if fm.Draft || time.Now().Before(fm.Date) {
		return nil, &fs.PathError{Op: "open", Path: pathname, Err: fs.ErrNotExist}
	}

	md := template.HTML(blackfriday.Run(body, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes)))

	var data = data{
		FrontMatter: fm,
		Page: PageInfo{
			Path:     p,
			Filename: bn,
		},
		Content: md,
		Site:    vfs.cfg,
	}

	tpl := vfs.getTemplates()
	var wtr bytes.Buffer
	err = tpl.ExecuteTemplate(&wtr, "default", data)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", pathname, err)
	}

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}
	return newRenderFile(fi, bn, wtr.Bytes()), nil
}
