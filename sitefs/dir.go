package sitefs

import (
	"errors"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/inkwell-blog/inkwell/content"
)

// File holds data about a page endpoint.
type File struct {
	FrontMatter content.FrontMatter
	Filename    string
}

// dir returns the pages of a folder for use in templates. Index and error
// pages are left out; the rest carry their front matter when they have one,
// or file metadata otherwise.
func (vfs *FS) dir(folderpath string) []File {
	folderpath = "./" + strings.TrimPrefix(folderpath, "/")
	folderpath = path.Clean(folderpath)
	entries, err := fs.ReadDir(vfs, folderpath)
	if err != nil {
		log.Printf("dir: %s", err)
		return nil
	}
	f := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.Name() == "index.html" || isErrorPage(entry.Name()) ||
			entry.Name() == "sitemap.xml" || entry.Name() == "feed.xml" {
			continue
		}
		fm := content.FrontMatter{
			Title: strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())),
			Tags:  []string{},
		}
		fi, err := entry.Info()
		if err == nil {
			fm.Date = fi.ModTime().Local()
		}
		if !entry.IsDir() && path.Ext(entry.Name()) == ".html" {
			src := path.Join(folderpath, strings.TrimSuffix(entry.Name(), ".html")+".md")
			parsed, err := vfs.readFrontMatter(src)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				log.Printf("dir: %s", err)
			}
			if parsed != nil {
				fm = *parsed
			}
		}
		f = append(f, File{FrontMatter: fm, Filename: entry.Name()})
	}
	return f
}

// sortByTime sorts the files by date in reverse order.
func sortByTime(f []File) []File {
	sort.Slice(f, func(i, j int) bool { return f[j].FrontMatter.Date.Before(f[i].FrontMatter.Date) })
	return f
}

// sortByName sorts the files by name in reverse order.
func sortByName(f []File) []File {
	sort.Slice(f, func(i, j int) bool { return f[j].Filename < f[i].Filename })
	return f
}

// reverse reverses the order of the file list.
func reverse(f []File) []File {
	for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
		f[i], f[j] = f[j], f[i]
	}
	return f
}

// filter keeps the files whose names match one of the patterns.
func filter(f []File, pat ...string) []File {
	var r []File
	for _, file := range f {
		if match(file.Filename, pat...) {
			r = append(r, file)
		}
	}
	return r
}

// match uses path.Match to test the name against each pattern.
func match(s string, pat ...string) bool {
	for _, p := range pat {
		ok, err := path.Match(p, s)
		if err != nil {
			log.Printf("match: %s", err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

// indexOf finds the position of the named file in the list.
func indexOf(f []File, name string) int {
	for i := range f {
		if f[i].Filename == name {
			return i
		}
	}
	return -1
}

// next returns the file before the current one, which for a reverse-date
// sorted list is the next post.
func next(f []File, current string) *File {
	if i := indexOf(f, current); i > 0 {
		return &f[i-1]
	}
	return nil
}

// prev returns the file after the current one in the list.
func prev(f []File, current string) *File {
	if i := indexOf(f, current); i >= 0 && i < len(f)-1 {
		return &f[i+1]
	}
	return nil
}
