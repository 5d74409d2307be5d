package generate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	bserrors "github.com/usmansaleem/blog-static-generator/internal/errors"
)

// AssetKind says whether a manifest entry is a file or a directory tree.
type AssetKind int

const (
	// AssetFile is a single file.
	AssetFile AssetKind = iota
	// AssetDir is a directory copied recursively.
	AssetDir
)

// Asset is one entry of the asset manifest, relative to both the source and
// the output root.
type Asset struct {
	Path string
	Kind AssetKind
}

// DefaultManifest lists the static resources copied into every build.
var DefaultManifest = []Asset{
	{"css", AssetDir},
	{"js/vendor", AssetDir},
	{"js/plugins.js", AssetFile},
	{"info.html", AssetFile},
	{"404.html", AssetFile},
	{"favicon.ico", AssetFile},
	{"icon.png", AssetFile},
	{"tile.png", AssetFile},
	{"tile-wide.png", AssetFile},
	{"robots.txt", AssetFile},
	{"site.webmanifest", AssetFile},
	{"browserconfig.xml", AssetFile},
	{"img", AssetDir},
}

// MainJSPath is the generated placeholder script.
const MainJSPath = "js/main.js"

const mainJS = `// Minimal main.js for static site
// Pagination is plain static HTML links; no runtime requests are made.
`

// Assets stages static resources from SourceDir into OutputDir.
type Assets struct {
	SourceDir string
	OutputDir string
	Manifest  []Asset // defaults to DefaultManifest
	Logger    *slog.Logger
}

// CopyAll copies every manifest entry that exists and writes js/main.js.
// Missing entries are skipped with a warning; a missing SourceDir is an error.
func (a *Assets) CopyAll() error {
	logger := loggerOrDefault(a.Logger)
	logger.Info("Copying static assets", "source", a.SourceDir)

	info, err := os.Stat(a.SourceDir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return bserrors.NotFound("asset source directory not found").WithContext("path", a.SourceDir).Build()
	}
	if err != nil {
		return bserrors.IOFailure(err, "stat asset source directory").WithContext("path", a.SourceDir).Build()
	}

	manifest := a.Manifest
	if manifest == nil {
		manifest = DefaultManifest
	}

	copied := 0
	for _, asset := range manifest {
		src := filepath.Join(a.SourceDir, filepath.FromSlash(asset.Path))
		dst := filepath.Join(a.OutputDir, filepath.FromSlash(asset.Path))

		if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
			logger.Warn("Skipping missing asset", "path", asset.Path)
			continue
		}

		if asset.Kind == AssetDir {
			err = copyDirContents(src, dst)
		} else {
			err = copyFile(src, dst)
		}
		if err != nil {
			return bserrors.IOFailure(err, "copy asset").WithContext("path", asset.Path).Build()
		}
		copied++
		logger.Debug("Copied asset", "path", asset.Path)
	}

	if err := writePage(a.OutputDir, MainJSPath, []byte(mainJS)); err != nil {
		return err
	}
	logger.Info("Copied static assets", "copied", copied, "generated", MainJSPath)
	return nil
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		return copyFile(path, dstPath)
	})
}

// copyFile copies a single file, creating the destination directory and
// keeping the source permissions.
func copyFile(srcFile, dstFile string) (err error) {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	srcInfo, err := srcF.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcFile, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", filepath.Dir(dstFile), err)
	}

	dstF, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	defer func() {
		if cerr := dstF.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", dstFile, cerr)
		}
	}()

	if _, err := io.Copy(dstF, srcF); err != nil {
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return nil
}
