package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if makeDirError := os.MkdirAll(filepath.Dir(filePath), 0o755); makeDirError != nil {
		testingHandle.Fatalf("failed to create directory for %s: %v", filePath, makeDirError)
	}
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

func TestLoadIgnoreFilePatterns(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	ignorePath := filepath.Join(rootDirectory, utils.GitIgnoreFileName)
	writeTestFile(testingHandle, ignorePath, "# comment\n\n*.log\r\n/build/\n!keep.log\n**/generated/\n   \n")

	patternList, loadError := LoadIgnoreFilePatterns(ignorePath)
	if loadError != nil {
		testingHandle.Fatalf("LoadIgnoreFilePatterns failed: %v", loadError)
	}
	expectedPatterns := []string{"*.log", "/build/", "!keep.log", "**/generated/"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}

	missingList, missingError := LoadIgnoreFilePatterns(filepath.Join(rootDirectory, "absent"))
	if missingError != nil || missingList != nil {
		testingHandle.Fatalf("expected no patterns and no error for a missing file, got %v %v", missingList, missingError)
	}
}

// TestLoadRecursiveIgnorePatternsNestedFiles verifies that every rule carries the directory of its file.
func TestLoadRecursiveIgnorePatternsNestedFiles(testingHandle *testing.T) {
	const (
		rootPatternName   = "root.txt"
		nestedPatternName = "nested.md"
		deeperPatternName = "*.tmp"
		nestedDirName     = "deep"
		deeperDirName     = "deeper"
	)
	deeperDirectory := nestedDirName + "/" + deeperDirName

	testCases := []struct {
		name     string
		sources  IgnoreSources
		expected []types.IgnoreRule
	}{
		{
			name:    "both_sources",
			sources: IgnoreSources{UseGitignore: true, UseIgnoreFile: true},
			expected: []types.IgnoreRule{
				{Directory: "", Pattern: rootPatternName},
				{Directory: nestedDirName, Pattern: nestedPatternName},
				{Directory: deeperDirectory, Pattern: deeperPatternName},
			},
		},
		{
			name:     "ignore_file_only",
			sources:  IgnoreSources{UseIgnoreFile: true},
			expected: []types.IgnoreRule{{Directory: "", Pattern: rootPatternName}},
		},
		{
			name:    "gitignore_only",
			sources: IgnoreSources{UseGitignore: true},
			expected: []types.IgnoreRule{
				{Directory: nestedDirName, Pattern: nestedPatternName},
				{Directory: deeperDirectory, Pattern: deeperPatternName},
			},
		},
		{
			name:     "disabled",
			sources:  IgnoreSources{},
			expected: nil,
		},
	}

	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.IgnoreFileName), rootPatternName+"\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, nestedDirName, utils.GitIgnoreFileName), nestedPatternName+"\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, nestedDirName, deeperDirName, utils.GitIgnoreFileName), deeperPatternName+"\n")
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.GitDirectoryName, utils.GitIgnoreFileName), "never.txt\n")

	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subTest *testing.T) {
			ruleList, loadError := LoadRecursiveIgnorePatterns(rootDirectory, testCase.sources)
			if loadError != nil {
				subTest.Fatalf("LoadRecursiveIgnorePatterns failed: %v", loadError)
			}
			if len(ruleList) == 0 && len(testCase.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(ruleList, testCase.expected) {
				subTest.Fatalf("unexpected rules: got %v want %v", ruleList, testCase.expected)
			}
		})
	}
}
