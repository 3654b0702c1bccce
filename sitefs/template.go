package sitefs

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/inkwell-blog/inkwell/site"
)

//go:embed default.html
var defaultTemplate string

// getTemplates returns the parsed templates.
func (vfs *FS) getTemplates() *template.Template {
	vfs.tplMutex.RLock()
	defer vfs.tplMutex.RUnlock()
	return vfs.tpl
}

// loadTemplates loads and parses the HTML templates, returning true if
// custom templates were found.
func (vfs *FS) loadTemplates() (bool, error) {
	funcMap := template.FuncMap{
		"dir":         vfs.dir,
		"sortbyname":  sortByName,
		"sortbytime":  sortByTime,
		"match":       match,
		"filter":      filter,
		"join":        path.Join,
		"ext":         path.Ext,
		"prev":        prev,
		"next":        next,
		"reverse":     reverse,
		"trimsuffix":  strings.TrimSuffix,
		"trimprefix":  strings.TrimPrefix,
		"trimspace":   strings.TrimSpace,
		"markdown":    vfs.md,
		"frontmatter": vfs.fm,
		"posts":       vfs.posts,
		"allposts":    vfs.allPosts,
		"tagset":      site.TagSet,
		"now":         time.Now,
	}
	vfs.tplMutex.Lock()
	defer vfs.tplMutex.Unlock()
	// Check if we are using the built-in template
	fi, err := fs.Stat(vfs.fs, "template")
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()) {
		tpl, err := template.New("inkwell").Funcs(funcMap).Parse(defaultTemplate)
		if err != nil {
			return false, fmt.Errorf("loadTemplates: %w", err)
		}
		vfs.tpl = tpl
		return false, nil
	}
	// use custom templates
	tpl, err := template.New("inkwell").Funcs(funcMap).ParseFS(vfs.fs, "template/*.html")
	if err != nil {
		return true, fmt.Errorf("loadTemplates: %w", err)
	}
	vfs.tpl = tpl
	return true, nil
}
