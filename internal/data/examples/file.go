package examples

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps the whole collection in one JSON document, rewritten on
// every append via a temp file and rename.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Name() string { return "file" }

func (b *FileBackend) Path() string { return b.path }

// Load returns an empty collection when the file does not exist yet.
func (b *FileBackend) Load(ctx context.Context) (Collection, error) {
	raw, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewCollection(), nil
	}
	if err != nil {
		return NewCollection(), fmt.Errorf("read examples: %w", err)
	}
	var c Collection
	if err := json.Unmarshal(raw, &c); err != nil {
		return NewCollection(), fmt.Errorf("decode examples %s: %w", b.path, err)
	}
	c.normalize()
	return c, nil
}

func (b *FileBackend) Append(ctx context.Context, _ Entry, all Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encode examples: %w", err)
	}
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create examples dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".examples-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write examples: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close examples: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		return fmt.Errorf("replace examples: %w", err)
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }
