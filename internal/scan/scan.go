package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File is a scannable directory entry.
type File struct {
	// Path is the absolute path of the file.
	Path string
	// Name is the base name including extension.
	Name string
	// Stem is the name without its final extension.
	Stem string
}

// Listing returns the files directly inside dir whose extension appears in
// the allow-list. Extensions are matched without the leading dot and without
// regard to case. Results are sorted by name.
func Listing(dir string, extensions []string) ([]File, error) {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		normalized := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if normalized == "" {
			continue
		}
		allowed[normalized] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %q: %w", dir, err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if _, ok := allowed[ext]; !ok {
			continue
		}
		files = append(files, File{
			Path: filepath.Join(dir, name),
			Name: name,
			Stem: strings.TrimSuffix(name, filepath.Ext(name)),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}
