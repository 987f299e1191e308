// Package config loads foldertree configuration files and collects the lines
// of ignore files together with the directories that hold them.
package config

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

const (
	commentPrefix       = "#"
	carriageReturn      = "\r"
	warningCloseFormat  = "Warning: failed to close %s: %v\n"
	errorLoadFileFormat = "loading %s from %s: %w"
)

// IgnoreSources selects which ignore files contribute rules.
type IgnoreSources struct {
	UseGitignore  bool
	UseIgnoreFile bool
}

// Enabled reports whether any ignore file is consulted.
func (sources IgnoreSources) Enabled() bool {
	return sources.UseGitignore || sources.UseIgnoreFile
}

func (sources IgnoreSources) fileNames() []string {
	var fileNames []string
	if sources.UseIgnoreFile {
		fileNames = append(fileNames, utils.IgnoreFileName)
	}
	if sources.UseGitignore {
		fileNames = append(fileNames, utils.GitIgnoreFileName)
	}
	return fileNames
}

// LoadIgnoreFilePatterns reads a single ignore file and returns its pattern
// lines in file order. Blank lines and comments are skipped; negations,
// anchors and escapes are kept for the matcher. A missing file yields no
// patterns.
//
// #nosec G304
func LoadIgnoreFilePatterns(ignoreFilePath string) ([]string, error) {
	fileHandle, openFileError := os.Open(ignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, warningCloseFormat, ignoreFilePath, closeError)
		}
	}()

	var ignorePatterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), carriageReturn)
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		ignorePatterns = append(ignorePatterns, line)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return ignorePatterns, nil
}

// LoadRecursiveIgnorePatterns walks rootDirectoryPath and collects the lines of
// every selected ignore file, each tagged with the directory that holds it.
// Directories are visited parent first, so later rules override earlier ones
// the way git applies them. The .git directory is never walked, and unreadable
// directories are skipped since the traversal reports them.
func LoadRecursiveIgnorePatterns(rootDirectoryPath string, sources IgnoreSources) ([]types.IgnoreRule, error) {
	if !sources.Enabled() {
		return nil, nil
	}
	fileNames := sources.fileNames()
	var aggregatedRules []types.IgnoreRule

	walkFunction := func(currentDirectoryPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			if currentDirectoryPath == rootDirectoryPath {
				return walkError
			}
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !directoryEntry.IsDir() {
			return nil
		}
		if directoryEntry.Name() == utils.GitDirectoryName {
			return filepath.SkipDir
		}

		relativeDirectory := filepath.ToSlash(utils.RelativePathOrSelf(currentDirectoryPath, rootDirectoryPath))
		if relativeDirectory == "." {
			relativeDirectory = ""
		}

		for _, fileName := range fileNames {
			ignorePatterns, loadError := LoadIgnoreFilePatterns(filepath.Join(currentDirectoryPath, fileName))
			if loadError != nil {
				return fmt.Errorf(errorLoadFileFormat, fileName, currentDirectoryPath, loadError)
			}
			for _, ignorePattern := range ignorePatterns {
				aggregatedRules = append(aggregatedRules, types.IgnoreRule{Directory: relativeDirectory, Pattern: ignorePattern})
			}
		}
		return nil
	}

	if walkError := filepath.WalkDir(rootDirectoryPath, walkFunction); walkError != nil {
		return nil, walkError
	}

	return aggregatedRules, nil
}
