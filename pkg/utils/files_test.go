package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testExtensions = []string{".js", ".jsx", ".mjs", ".ts", ".tsx"}

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected bool
	}{
		{
			name:     "javascript file",
			filename: "main.js",
			expected: true,
		},
		{
			name:     "typescript file with path",
			filename: "src/components/App.tsx",
			expected: true,
		},
		{
			name:     "module file",
			filename: "server.mjs",
			expected: true,
		},
		{
			name:     "test file should be included",
			filename: "src/utils.test.ts",
			expected: true,
		},
		{
			name:     "declaration file",
			filename: "types/index.d.ts",
			expected: false,
		},
		{
			name:     "extension not configured",
			filename: "legacy.cjs",
			expected: false,
		},
		{
			name:     "non-source file",
			filename: "README.md",
			expected: false,
		},
		{
			name:     "file with .js in middle",
			filename: "file.js.map",
			expected: false,
		},
		{
			name:     "empty string",
			filename: "",
			expected: false,
		},
		{
			name:     "hidden js file",
			filename: ".eslintrc.js",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result := IsSourceFile(tt.filename, testExtensions)
			req.Equal(tt.expected, result, "IsSourceFile(%q) = %v, want %v", tt.filename, result, tt.expected)
		})
	}
}

func TestIsDirectory(t *testing.T) {
	req := require.New(t)
	// Create a temporary directory for testing
	tempDir := t.TempDir()

	// Create a temporary file
	tempFile := filepath.Join(tempDir, "test.txt")
	err := os.WriteFile(tempFile, []byte("test"), 0644)
	req.NoError(err, "Failed to create temp file: %v", err)

	tests := []struct {
		name      string
		path      string
		expected  bool
		expectErr bool
	}{
		{
			name:      "existing directory",
			path:      tempDir,
			expected:  true,
			expectErr: false,
		},
		{
			name:      "existing file",
			path:      tempFile,
			expected:  false,
			expectErr: false,
		},
		{
			name:      "non-existent path",
			path:      "/non/existent/path",
			expected:  false,
			expectErr: true,
		},
		{
			name:      "current directory",
			path:      ".",
			expected:  true,
			expectErr: false,
		},
		{
			name:      "parent directory",
			path:      "..",
			expected:  true,
			expectErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := IsDirectory(tt.path)

			if tt.expectErr {
				req.Error(err, "IsDirectory(%q) expected error, got nil", tt.path)
			} else {
				req.NoError(err, "IsDirectory(%q) unexpected error: %v", tt.path, err)
				req.Equal(tt.expected, result, "IsDirectory(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestFindSourceFiles(t *testing.T) {
	req := require.New(t)
	// Create a temporary directory structure for testing
	tempDir := t.TempDir()

	// Create test directory structure
	dirs := []string{
		"src/components",
		"src/utils",
		"node_modules/vue/dist",
		"vendor/lib",
		".git",
		".cache",
	}

	for _, dir := range dirs {
		err := os.MkdirAll(filepath.Join(tempDir, dir), 0755)
		req.NoError(err, "Failed to create directory %s: %v", dir, err)
	}

	// Create test files
	files := map[string]string{
		"index.js":                     "import a from 'a';",
		"src/components/App.tsx":       "import React from 'react';",
		"src/utils/format.ts":          "export {};",
		"src/utils/format.test.ts":     "import { format } from './format';", // Should be included
		"src/utils/types.d.ts":         "export type A = string;",            // Should be excluded (declaration)
		"node_modules/vue/dist/vue.js": "module.exports = {};",               // Should be excluded (node_modules)
		"vendor/lib/lib.js":            "var a;",                             // Should be excluded (vendor dir)
		".git/config":                  "config",                             // Should be excluded (hidden dir)
		".cache/cached.js":             "var a;",                             // Should be excluded (hidden dir)
		"README.md":                    "# README",                           // Should be excluded (not source)
		"package.json":                 "{}",                                 // Should be excluded (not source)
	}

	for filePath, content := range files {
		fullPath := filepath.Join(tempDir, filePath)
		err := os.WriteFile(fullPath, []byte(content), 0644)
		req.NoError(err, "Failed to create file %s: %v", filePath, err)
	}

	tests := []struct {
		name          string
		root          string
		expectedFiles []string
		expectErr     bool
	}{
		{
			name: "find source files in temp directory",
			root: tempDir,
			expectedFiles: []string{
				filepath.Join(tempDir, "index.js"),
				filepath.Join(tempDir, "src/components/App.tsx"),
				filepath.Join(tempDir, "src/utils/format.test.ts"),
				filepath.Join(tempDir, "src/utils/format.ts"),
			},
			expectErr: false,
		},
		{
			name:      "non-existent directory",
			root:      "/non/existent/path",
			expectErr: true,
		},
		{
			name:      "empty directory",
			root:      filepath.Join(tempDir, "empty"),
			expectErr: false,
		},
	}

	// Create empty directory for test
	err := os.Mkdir(filepath.Join(tempDir, "empty"), 0755)
	req.NoError(err, "Failed to create empty directory: %v", err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			result, err := FindSourceFiles(tt.root, testExtensions)

			if tt.expectErr {
				req.Error(err, "FindSourceFiles(%q) expected error, got nil", tt.root)
				return
			}

			req.NoError(err, "FindSourceFiles(%q) unexpected error: %v", tt.root, err)
			req.Equal(tt.expectedFiles, result, "FindSourceFiles(%q) returned %v", tt.root, result)
		})
	}
}
