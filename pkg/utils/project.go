package utils

import (
	"os"
	"path/filepath"
)

// ProjectMarker is the file that marks the root of a JavaScript project
const ProjectMarker = "package.json"

// GetProjectRoot returns the nearest directory at or above path that contains a package.json,
// or an empty string when there is none
func GetProjectRoot(path string) string {
	// Convert to absolute path if relative
	absPath, err := filepath.Abs(path)
	if err != nil {
		return ""
	}

	dir := absPath
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	iterations := 0
	maxIterations := 64 // Prevent infinite loop

	for iterations < maxIterations {
		iterations++

		if info, err := os.Stat(filepath.Join(dir, ProjectMarker)); err == nil && !info.IsDir() {
			return dir
		}

		// Get parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// ConfigSearchPaths returns the directories searched for a configuration file: the working
// directory first, then the project root of path when it differs
func ConfigSearchPaths(path string) []string {
	var paths []string
	if wd, err := os.Getwd(); err == nil {
		paths = append(paths, wd)
	}
	if root := GetProjectRoot(path); root != "" && (len(paths) == 0 || root != paths[0]) {
		paths = append(paths, root)
	}
	return paths
}
