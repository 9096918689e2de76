package level

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Load reads a level pack from path. An empty path yields the embedded
// default pack. A directory contributes every .yaml/.yml file in it, sorted
// by name, with levels concatenated in that order.
func Load(path string) (*Pack, error) {
	if path == "" {
		return Default(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("level: cannot stat %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = packFiles(path)
		if err != nil {
			return nil, err
		}
	}

	var levels []Level
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("level: cannot read %s: %w", file, err)
		}
		lvls, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		levels = append(levels, lvls...)
	}

	pack, err := NewPack(levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pack, nil
}

// packFiles lists the YAML files of a directory in name order.
func packFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("level: cannot read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !isPackFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func isPackFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
