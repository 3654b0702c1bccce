package sitefs

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// newSitemapFile generates the sitemap.xml document from the published
// pages of the site. Error pages, hidden files, drafts, and unpublished
// posts stay out.
func (vfs *FS) newSitemapFile(name string) (fs.File, error) {
	var (
		urls    []sitemapURL
		maxTime time.Time
		now     = time.Now()
		base    = strings.TrimSuffix(vfs.cfg.SiteURL, "/")
	)
	err := fs.WalkDir(vfs.fs, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && (isHiddenFile(p) || containsSpecialFile(p)) {
				return fs.SkipDir
			}
			return nil
		}
		if isHiddenFile(p) || containsSpecialFile(p) || isErrorPage(p) || path.Ext(p) != ".md" {
			return nil
		}
		fm, ferr := vfs.readFrontMatter(p)
		if ferr != nil {
			return fmt.Errorf("%s: %w", p, ferr)
		}
		lastMod := ""
		if fm != nil {
			if fm.Draft || now.Before(fm.Date) {
				return nil
			}
			lastMod = fm.Date.Format("2006-01-02")
		} else if fi, ierr := d.Info(); ierr == nil {
			lastMod = fi.ModTime().Format("2006-01-02")
			if fi.ModTime().After(maxTime) {
				maxTime = fi.ModTime()
			}
		}
		loc := strings.TrimSuffix(p, ".md") + ".html"
		if path.Base(loc) == "index.html" {
			loc = strings.TrimSuffix(loc, "index.html")
		}
		urls = append(urls, sitemapURL{
			Loc:     base + "/" + loc,
			LastMod: lastMod,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	doc := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	b, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap: %w", err)
	}
	if maxTime.IsZero() {
		maxTime = now
	}
	return newMemFile(name, append([]byte(xml.Header), b...), maxTime), nil
}
