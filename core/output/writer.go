// Package output handles file naming and writing for recipegrab outputs.
// Recipe notes are named after the recipe; the shopping list and recipe
// notes are read and written as plain text through FileStore.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"
)

// disallowedChars are characters removed from note file names.
var disallowedChars = regexp.MustCompile(`["*\\/<>:?|]`)

// Writer writes rendered recipe notes to disk.
type Writer struct {
	OutputDir string
	now       func() time.Time
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir, now: time.Now}, nil
}

// WriteRecipe writes a note named after the recipe, e.g. "Dumplings.md".
// A name that is empty after sanitizing falls back to a millisecond
// timestamp; existing files are never overwritten, a " (n)" suffix is
// added instead.
func (w *Writer) WriteRecipe(recipeName string, data []byte, ext string) (string, error) {
	base := Filename(recipeName)
	if base == "" {
		base = strconv.FormatInt(w.now().UnixMilli(), 10)
	}

	path := filepath.Join(w.OutputDir, base+ext)
	for n := 1; ; n++ {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			path = filepath.Join(w.OutputDir, fmt.Sprintf("%s (%d)%s", base, n, ext))
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating file %s: %w", path, err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("writing file %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("closing file %s: %w", path, err)
		}
		return path, nil
	}
}

// Filename strips characters that are not allowed in note names.
func Filename(name string) string {
	return disallowedChars.ReplaceAllString(name, "")
}

// FileStore reads and writes plain text files.
type FileStore struct{}

// NewFileStore creates a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Read returns the file content; exists is false when the file is missing.
func (s *FileStore) Read(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), true, nil
}

// Write replaces the file content, creating parent directories as needed.
func (s *FileStore) Write(path string, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
