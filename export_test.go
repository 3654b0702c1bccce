package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/inkwell-blog/inkwell/sitefs"
)

func TestExport(t *testing.T) {
	vfs, err := sitefs.New(os.DirFS("sitefs/testdata/site"))
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	out := t.TempDir()
	if err := export(vfs, out); err != nil {
		t.Fatalf("export: %s", err)
	}
	for _, name := range []string{
		"index.html",
		"about.html",
		"404.html",
		"sitemap.xml",
		"feed.xml",
		"posts/hello.html",
		"posts/patterns.html",
		"static/style.css",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Errorf("Expected %q in the export: %v", name, err)
		}
	}
	for _, name := range []string{
		"inkwell.cfg",
		"posts/hello.md",
		"posts/draft.html",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err == nil {
			t.Errorf("Expected %q to stay out of the export", name)
		}
	}
	b, err := os.ReadFile(filepath.Join(out, "posts", "hello.html"))
	if err != nil {
		t.Fatalf("ReadFile: %s", err)
	}
	if !strings.Contains(string(b), "Hello World") {
		t.Error("Expected the exported page to be rendered HTML")
	}
}

func TestExportFailsOnSchemaViolation(t *testing.T) {
	vfs, err := sitefs.New(os.DirFS("sitefs/testdata/badsite"))
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	err = export(vfs, t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "bad.md") {
		t.Errorf("Expected the export to fail naming the bad document, got %v", err)
	}
}
