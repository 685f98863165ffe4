package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveRoot root'u mutlak yola çevirir ve symlink'leri çözer.
func ResolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("cannot resolve root %s: %w", root, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("root not accessible: %w", err)
	}
	return resolved, nil
}

// sortPaths yolları bileşen bileşen sıralar: "A", "A/B", "A-2".
func sortPaths(paths []string) {
	sep := string(filepath.Separator)
	sort.Slice(paths, func(i, j int) bool {
		a := strings.Split(paths[i], sep)
		b := strings.Split(paths[j], sep)
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
}

// ignored dizin adı ignore listesinde ya da exclude pattern'lerinden birinde mi?
func (c Config) ignored(name string) bool {
	if _, ok := c.IgnoreDirs[name]; ok {
		return true
	}
	for _, pattern := range c.Excludes {
		if match, _ := doublestar.Match(pattern, name); match {
			return true
		}
	}
	return false
}

// GatherTargetDirs root altındaki incelenecek dizinleri toplar. Root'un
// kendisi dahil edilmez. Ignore edilen dizinlerin alt ağacına hiç girilmez.
func GatherTargetDirs(root string, recursive bool, cfg Config) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("root not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	if recursive {
		return walkDirs(root, cfg)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("cannot read root: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if cfg.ignored(entry.Name()) {
			continue
		}
		child := filepath.Join(root, entry.Name())
		if !entry.IsDir() {
			// symlink ise hedefe bak
			if entry.Type()&fs.ModeSymlink == 0 {
				continue
			}
			if st, err := os.Stat(child); err != nil || !st.IsDir() {
				continue
			}
		}
		dirs = append(dirs, child)
	}
	return dirs, nil
}

func walkDirs(root string, cfg Config) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			// okunamayan alt dizin: atla, devam et
			return nil
		}
		if path == root || !d.IsDir() {
			return nil
		}
		if cfg.ignored(d.Name()) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk root: %w", err)
	}
	return dirs, nil
}
