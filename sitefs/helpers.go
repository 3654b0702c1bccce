package sitefs

import (
	"path"
	"strings"

	"github.com/inkwell-blog/inkwell/content"
	"github.com/inkwell-blog/inkwell/site"
)

var hiddenFiles = []string{
	"template",
	site.ConfigFile,
}

// isHiddenFile returns true if the given file is considered
// hidden from outside view.
func isHiddenFile(name string) bool {
	for _, s := range hiddenFiles {
		if name == s || strings.HasPrefix(name, s+"/") {
			return true
		}
	}
	return false
}

// containsSpecialFile reports whether name contains a path element starting
// with a period. The name is assumed to be delimited by forward slashes, as
// guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// requiresFrontMatter reports whether the named document must carry a front
// matter block. Documents in the post collection are held to the schema; the
// collection index page is a listing, not a post.
func requiresFrontMatter(name string) bool {
	base := path.Base(name)
	return strings.HasPrefix(name, content.CollectionDir+"/") &&
		strings.TrimSuffix(base, path.Ext(base)) != "index"
}

// isErrorPage reports whether the name is one of the error documents served
// by the web layer. They render like any page but stay out of listings and
// the sitemap.
func isErrorPage(name string) bool {
	return name == "404.md" || name == "500.md" || name == "404.html" || name == "500.html"
}
