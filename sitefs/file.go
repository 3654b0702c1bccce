package sitefs

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/inkwell-blog/inkwell/content"
)

// virtualFileInfo overrides the reported file name.
type virtualFileInfo struct {
	fs.FileInfo
	name string
}

// Name returns the base name of the file.
func (fi virtualFileInfo) Name() string {
	return fi.name
}

// renderFile holds content rendered in memory from an underlying source
// file. The source is fully consumed up front, so the render file carries
// its own metadata and outlives the source handle.
type renderFile struct {
	fi     renderFileInfo
	reader io.ReadSeeker // rendered data
}

func newRenderFile(srcInfo fs.FileInfo, name string, b []byte) *renderFile {
	return &renderFile{
		fi: renderFileInfo{
			virtualFileInfo: virtualFileInfo{FileInfo: srcInfo, name: name},
			size:            int64(len(b)),
		},
		reader: bytes.NewReader(b),
	}
}

// Stat returns a FileInfo describing the rendered file, reporting the
// rendered length rather than the source length.
func (f *renderFile) Stat() (fs.FileInfo, error) {
	return f.fi, nil
}

func (f *renderFile) Read(b []byte) (int, error) {
	return f.reader.Read(b)
}

// Seek sets the offset for the next Read, as required by http.FS for
// range and content-type handling.
func (f *renderFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

func (f *renderFile) Close() error { return nil }

type renderFileInfo struct {
	virtualFileInfo

	size int64
}

// Size reports the length of the rendered data.
func (rfi renderFileInfo) Size() int64 {
	return rfi.size
}

// memFile is a generated file with no physical backing, used for the
// sitemap and feed documents.
type memFile struct {
	fi     memFileInfo
	reader *bytes.Reader
}

func newMemFile(name string, b []byte, modTime time.Time) *memFile {
	return &memFile{
		fi: memFileInfo{
			name:    path.Base(name),
			size:    int64(len(b)),
			modTime: modTime,
		},
		reader: bytes.NewReader(b),
	}
}

func (f *memFile) Stat() (fs.FileInfo, error) { return f.fi, nil }

func (f *memFile) Read(b []byte) (int, error) { return f.reader.Read(b) }

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

func (f *memFile) Close() error { return nil }

type memFileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (fi memFileInfo) Name() string       { return fi.name }
func (fi memFileInfo) Size() int64        { return fi.size }
func (fi memFileInfo) Mode() fs.FileMode  { return 0444 }
func (fi memFileInfo) ModTime() time.Time { return fi.modTime }
func (fi memFileInfo) IsDir() bool        { return false }
func (fi memFileInfo) Sys() any           { return nil }

// virtualDirEntry presents a directory entry under its virtual name. It is
// lightweight: sizes reflect the source file, not the rendered output.
type virtualDirEntry struct {
	virtualFileInfo
}

// Type returns the type bits for the entry.
func (di virtualDirEntry) Type() fs.FileMode {
	return di.virtualFileInfo.Mode().Type()
}

// Info returns the FileInfo for the file described by the entry.
func (di virtualDirEntry) Info() (fs.FileInfo, error) {
	return di.virtualFileInfo, nil
}

// virtualDir lists a directory with Markdown sources shown under their
// rendered ".html" names, and hidden or draft content removed. At the root
// it adds the generated sitemap and feed entries.
type virtualDir struct {
	fs.File

	vfs     *FS
	path    string
	entries []fs.DirEntry
	loaded  bool
}

func (d *virtualDir) load() error {
	if d.loaded {
		return nil
	}
	d.loaded = true
	entries, err := fs.ReadDir(d.vfs.fs, d.path)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, entry := range entries {
		name := entry.Name()
		full := path.Join(d.path, name)
		if isHiddenFile(full) || containsSpecialFile(full) {
			continue
		}
		if entry.IsDir() || path.Ext(name) != ".md" {
			d.entries = append(d.entries, entry)
			continue
		}
		// Markdown source: surface as the rendered page unless it
		// is a draft or not yet published.
		fm, ferr := d.vfs.readFrontMatter(full)
		if ferr != nil {
			return fmt.Errorf("%s: %w", full, ferr)
		}
		if fm != nil && (fm.Draft || now.Before(fm.Date)) {
			continue
		}
		fi, ferr := entry.Info()
		if ferr != nil {
			return ferr
		}
		d.entries = append(d.entries, virtualDirEntry{
			virtualFileInfo{FileInfo: fi, name: strings.TrimSuffix(name, ".md") + ".html"},
		})
	}
	if d.path == "." {
		d.entries = append(d.entries, virtualDirEntry{
			virtualFileInfo{FileInfo: memFileInfo{name: "sitemap.xml", modTime: now}, name: "sitemap.xml"},
		})
		if d.vfs.cfg.Social.Feed {
			d.entries = append(d.entries, virtualDirEntry{
				virtualFileInfo{FileInfo: memFileInfo{name: "feed.xml", modTime: now}, name: "feed.xml"},
			})
		}
	}
	sort.Slice(d.entries, func(i, j int) bool { return d.entries[i].Name() < d.entries[j].Name() })
	return nil
}

// ReadDir reads the contents of the directory and returns a slice of up to
// n DirEntry values, following the fs.ReadDirFile contract.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	if n <= 0 {
		r := d.entries
		d.entries = nil
		return r, nil
	}
	if len(d.entries) == 0 {
		return nil, io.EOF
	}
	if n > len(d.entries) {
		n = len(d.entries)
	}
	r := d.entries[:n]
	d.entries = d.entries[n:]
	return r, nil
}

// readFrontMatter parses and validates the front matter of the named
// source file. Plain pages without a front matter block return nil with no
// error, but a missing block in the post collection is a schema violation,
// and a block that fails the schema is an error wherever it appears.
func (vfs *FS) readFrontMatter(name string) (*content.FrontMatter, error) {
	b, err := fs.ReadFile(vfs.fs, name)
	if err != nil {
		return nil, err
	}
	fm, _, format, err := content.Parse(b)
	if err != nil {
		return nil, err
	}
	if format == content.None {
		if requiresFrontMatter(name) {
			return nil, &content.SchemaError{Field: "title", Reason: "is required"}
		}
		return nil, nil
	}
	return &fm, nil
}
