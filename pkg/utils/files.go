package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// skippedDirs lists directory names never descended into
var skippedDirs = []string{"node_modules", "vendor", "dist", "build", "coverage"}

// IsSourceFile checks if a file name carries one of the given extensions.
// Declaration files (.d.ts) are not considered source files.
func IsSourceFile(filename string, extensions []string) bool {
	base := filepath.Base(filename)
	if strings.HasSuffix(base, ".d.ts") || strings.HasSuffix(base, ".d.mts") || strings.HasSuffix(base, ".d.cts") {
		return false
	}
	ext := filepath.Ext(base)
	return ext != "" && slices.Contains(extensions, ext)
}

// FindSourceFiles recursively finds all source files with the given extensions in a directory.
// The result is sorted so that processing order is deterministic.
func FindSourceFiles(root string, extensions []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency, output and hidden directories (but not the root directory)
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if slices.Contains(skippedDirs, name) || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSourceFile(path, extensions) {
			files = append(files, path)
		}

		return nil
	})

	slices.Sort(files)
	return files, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
