package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tyemirov/foldertree/internal/pattern"
)

const (
	warningReadDirectoryFormat = "cannot read directory %s: %v"
	warningStatPathFormat      = "unable to stat %s: %v"
	warningBrokenLinkFormat    = "broken symbolic link %s: %v"
	warningLinkCycleFormat     = "not following %s: link resolves to ancestor %s"
	warningResolveLinkFormat   = "cannot resolve symbolic link %s: %v"

	relativePathSeparator = "/"
)

// ProgressUpdate is reported after every directory listing.
type ProgressUpdate struct {
	Directory          string
	Entries            int
	DirectoriesScanned int
}

// resolvedRoot is a validated traversal root.
type resolvedRoot struct {
	absolutePath  string
	canonicalPath string
	name          string
}

// resolveRoot converts rootPath to an absolute directory path or reports why it cannot be traversed.
func resolveRoot(rootPath string) (resolvedRoot, error) {
	absolutePath, absoluteError := filepath.Abs(rootPath)
	if absoluteError != nil {
		return resolvedRoot{}, fmt.Errorf(errorAbsolutePathFormat, rootPath, absoluteError)
	}
	cleanPath := filepath.Clean(absolutePath)
	rootInfo, statError := os.Stat(cleanPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return resolvedRoot{}, &NotFoundError{Path: rootPath}
		}
		return resolvedRoot{}, fmt.Errorf(errorStatRootFormat, rootPath, statError)
	}
	if !rootInfo.IsDir() {
		return resolvedRoot{}, &NotDirectoryError{Path: rootPath}
	}
	canonicalPath, evalError := filepath.EvalSymlinks(cleanPath)
	if evalError != nil {
		canonicalPath = cleanPath
	}
	return resolvedRoot{
		absolutePath:  cleanPath,
		canonicalPath: canonicalPath,
		name:          filepath.Base(cleanPath),
	}, nil
}

// directoryEntry is a listed, filtered child of a directory.
type directoryEntry struct {
	name         string
	path         string
	relativePath string
	isDirectory  bool
	isSymlink    bool
	info         fs.FileInfo
}

// directoryWalker holds the state shared by the tree builder and the searcher
// during one traversal: filters, callbacks and the chain of ancestor directories.
type directoryWalker struct {
	showHidden         bool
	exclusions         *pattern.ExclusionSet
	warn               func(path, message string)
	progress           func(ProgressUpdate)
	directoriesScanned int
	ancestors          map[string]struct{}
}

func newDirectoryWalker(showHidden bool, exclusions *pattern.ExclusionSet, warn func(path, message string), progress func(ProgressUpdate)) *directoryWalker {
	if warn == nil {
		warn = func(string, string) {}
	}
	if progress == nil {
		progress = func(ProgressUpdate) {}
	}
	return &directoryWalker{
		showHidden: showHidden,
		exclusions: exclusions,
		warn:       warn,
		progress:   progress,
		ancestors:  map[string]struct{}{},
	}
}

// list returns the visible children of directoryPath, directories first, each
// group ordered case-insensitively with the exact name breaking ties.
func (walker *directoryWalker) list(directoryPath string, relativeDirectory string) ([]directoryEntry, error) {
	rawEntries, readError := os.ReadDir(directoryPath)
	if readError != nil {
		return nil, readError
	}
	walker.directoriesScanned++

	entries := make([]directoryEntry, 0, len(rawEntries))
	for _, rawEntry := range rawEntries {
		name := rawEntry.Name()
		if !walker.showHidden && pattern.IsHidden(name) {
			continue
		}
		entry := directoryEntry{
			name:         name,
			path:         filepath.Join(directoryPath, name),
			relativePath: joinRelative(relativeDirectory, name),
			isSymlink:    rawEntry.Type()&fs.ModeSymlink != 0,
		}
		if entry.isSymlink {
			targetInfo, targetError := os.Stat(entry.path)
			if targetError != nil {
				walker.warn(entry.path, fmt.Sprintf(warningBrokenLinkFormat, entry.path, targetError))
			} else {
				entry.info = targetInfo
				entry.isDirectory = targetInfo.IsDir()
			}
		} else {
			entryInfo, infoError := rawEntry.Info()
			if infoError != nil {
				walker.warn(entry.path, fmt.Sprintf(warningStatPathFormat, entry.path, infoError))
				entry.isDirectory = rawEntry.IsDir()
			} else {
				entry.info = entryInfo
				entry.isDirectory = entryInfo.IsDir()
			}
		}
		if walker.exclusions.Excludes(name, entry.relativePath, entry.isDirectory) {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(left, right int) bool {
		return entryLess(entries[left], entries[right])
	})

	walker.progress(ProgressUpdate{
		Directory:          directoryPath,
		Entries:            len(entries),
		DirectoriesScanned: walker.directoriesScanned,
	})
	return entries, nil
}

func entryLess(left, right directoryEntry) bool {
	if left.isDirectory != right.isDirectory {
		return left.isDirectory
	}
	leftFolded := strings.ToLower(left.name)
	rightFolded := strings.ToLower(right.name)
	if leftFolded != rightFolded {
		return leftFolded < rightFolded
	}
	return left.name < right.name
}

type enterStatus int

const (
	enterAllowed enterStatus = iota
	enterLinkCycle
	enterUnresolved
)

// enter resolves the canonical path of a child directory and reports whether
// descending into it would revisit an ancestor.
func (walker *directoryWalker) enter(entry directoryEntry, parentCanonical string) (string, enterStatus) {
	if !entry.isSymlink {
		return filepath.Join(parentCanonical, entry.name), enterAllowed
	}
	canonicalPath, evalError := filepath.EvalSymlinks(entry.path)
	if evalError != nil {
		walker.warn(entry.path, fmt.Sprintf(warningResolveLinkFormat, entry.path, evalError))
		return "", enterUnresolved
	}
	if _, isAncestor := walker.ancestors[canonicalPath]; isAncestor {
		walker.warn(entry.path, fmt.Sprintf(warningLinkCycleFormat, entry.path, canonicalPath))
		return canonicalPath, enterLinkCycle
	}
	return canonicalPath, enterAllowed
}

func (walker *directoryWalker) push(canonicalPath string) {
	walker.ancestors[canonicalPath] = struct{}{}
}

func (walker *directoryWalker) pop(canonicalPath string) {
	delete(walker.ancestors, canonicalPath)
}

func joinRelative(relativeDirectory string, name string) string {
	if relativeDirectory == "" {
		return name
	}
	return relativeDirectory + relativePathSeparator + name
}
