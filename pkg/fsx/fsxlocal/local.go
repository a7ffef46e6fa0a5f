// Package fsxlocal implements fsx.FileSystem on the local disk. Reads resolve
// a locator against the upstream application's storage layout: the raw path,
// then the private/ area, then public/ for locators carrying that prefix.
package fsxlocal

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizforge/quizforge/pkg/fsx"
)

// LocalFileSystem implements fsx.FileSystem using a base directory on disk.
type LocalFileSystem struct {
	basePath string
}

// NewLocalFileSystem creates a local file system rooted at basePath,
// creating the directory when missing.
func NewLocalFileSystem(basePath string) (*LocalFileSystem, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return &LocalFileSystem{basePath: abs}, nil
}

// GetBasePath returns the resolved root directory.
func (fs *LocalFileSystem) GetBasePath() string { return fs.basePath }

// candidates returns the on-disk locations a locator may resolve to, in
// probe order.
func (fs *LocalFileSystem) candidates(path string) []string {
	paths := []string{
		filepath.Join(fs.basePath, filepath.FromSlash(path)),
		filepath.Join(fs.basePath, "private", filepath.FromSlash(path)),
	}
	if rel, ok := strings.CutPrefix(path, "public/"); ok {
		paths = append(paths, filepath.Join(fs.basePath, "public", filepath.FromSlash(rel)))
	}
	return paths
}

func (fs *LocalFileSystem) resolve(path string) (string, error) {
	for _, p := range fs.candidates(path) {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("file not found: %s", path)
}

func (fs *LocalFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	full, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

func (fs *LocalFileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	full, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return f, nil
}

func (fs *LocalFileSystem) Stat(ctx context.Context, path string) (fsx.FileInfo, error) {
	full, err := fs.resolve(path)
	if err != nil {
		return fsx.FileInfo{}, err
	}
	info, err := os.Stat(full)
	if err != nil {
		return fsx.FileInfo{}, fmt.Errorf("failed to stat file: %w", err)
	}
	return fsx.FileInfo{
		Name:        info.Name(),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		IsDir:       info.IsDir(),
		ContentType: detectContentType(full),
		Metadata:    make(map[string]string),
	}, nil
}

func (fs *LocalFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	if _, err := fs.resolve(path); err != nil {
		return false, nil
	}
	return true, nil
}

func (fs *LocalFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	full := filepath.Join(fs.basePath, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (fs *LocalFileSystem) DeleteFile(ctx context.Context, path string) error {
	full, err := fs.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (fs *LocalFileSystem) Join(elem ...string) string {
	return filepath.ToSlash(filepath.Join(elem...))
}

func detectContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
