// Package generate writes the site's pages and static assets into the output
// directory.
package generate

import (
	"os"
	"path/filepath"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
)

// writePage writes content to root/rel, creating parent directories and
// replacing any existing file.
func writePage(root, rel string, content []byte) error {
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return bserrors.IOFailure(err, "create page directory").WithContext("path", filepath.Dir(path)).Build()
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return bserrors.IOFailure(err, "write page").WithContext("path", path).Build()
	}
	return nil
}
