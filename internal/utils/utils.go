// Package utils contains general helper functions used across foldertree.
package utils

import (
	"path/filepath"
	"strings"
)

const patternListSeparator = ","

// DeduplicatePatterns removes duplicate patterns from a slice while preserving order.
// The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}

// SplitPatternList expands comma separated entries ("a, b") into trimmed,
// non-empty, deduplicated patterns.
func SplitPatternList(entries []string) []string {
	var patterns []string
	for _, entry := range entries {
		for _, candidate := range strings.Split(entry, patternListSeparator) {
			trimmed := strings.TrimSpace(candidate)
			if trimmed != "" {
				patterns = append(patterns, trimmed)
			}
		}
	}
	return DeduplicatePatterns(patterns)
}

// RelativePathOrSelf calculates the relative path from root to fullPath.
// Returns the cleaned fullPath if relative calculation fails.
// Returns "." if fullPath and root resolve to the same directory.
func RelativePathOrSelf(fullPath, root string) string {
	cleanPath := filepath.Clean(fullPath)
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return cleanPath
	}
	cleanAbsoluteRoot := filepath.Clean(absoluteRoot)

	if cleanPath == cleanAbsoluteRoot {
		return "."
	}

	relativePath, relErr := filepath.Rel(cleanAbsoluteRoot, cleanPath)
	if relErr != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}
