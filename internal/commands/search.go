package commands

import (
	"fmt"

	"github.com/tyemirov/foldertree/internal/pattern"
	"github.com/tyemirov/foldertree/internal/types"
)

// SearchFiles collects the files under rootPath whose names match searchPattern.
func SearchFiles(rootPath string, searchPattern string, options types.SearchOptions) ([]types.SearchMatch, error) {
	searcher := &Searcher{Options: options}
	return searcher.Search(rootPath, searchPattern)
}

// Search walks rootPath without a depth limit and returns matching files. Within
// a directory the matching files come first, then the subdirectories, each in
// name order. An empty pattern matches nothing; a malformed one yields an
// InvalidPatternError and no matches.
func (searcher *Searcher) Search(rootPath string, searchPattern string) ([]types.SearchMatch, error) {
	matches := []types.SearchMatch{}
	nameMatcher, matcherError := pattern.NewNameMatcher(searchPattern)
	if matcherError != nil {
		return matches, matcherError
	}
	root, rootError := resolveRoot(rootPath)
	if rootError != nil {
		return matches, rootError
	}
	if nameMatcher.IsEmpty() {
		return matches, nil
	}
	exclusions, exclusionError := pattern.NewExclusionSet(searcher.Options.ExcludePatterns, searcher.Options.IgnoreRules)
	if exclusionError != nil {
		return matches, fmt.Errorf(errorExclusionFormat, exclusionError)
	}

	walk := &searchWalk{
		walker:  newDirectoryWalker(searcher.Options.ShowHidden, exclusions, searcher.Warn, searcher.Progress),
		matcher: nameMatcher,
		matches: matches,
	}
	walk.walker.push(root.canonicalPath)
	walk.walkDirectory(root.absolutePath, root.canonicalPath, "")
	return walk.matches, nil
}

type searchWalk struct {
	walker  *directoryWalker
	matcher *pattern.NameMatcher
	matches []types.SearchMatch
}

func (walk *searchWalk) walkDirectory(directoryPath string, canonicalPath string, relativePath string) {
	entries, listError := walk.walker.list(directoryPath, relativePath)
	if listError != nil {
		walk.walker.warn(directoryPath, fmt.Sprintf(warningReadDirectoryFormat, directoryPath, listError))
		return
	}

	for _, entry := range entries {
		if entry.isDirectory || !walk.matcher.Match(entry.name) {
			continue
		}
		match := types.SearchMatch{
			Path:         entry.path,
			RelativePath: entry.relativePath,
			Name:         entry.name,
		}
		if entry.info != nil {
			match.SizeBytes = entry.info.Size()
			match.ModifiedAt = entry.info.ModTime()
		}
		walk.matches = append(walk.matches, match)
	}

	for _, entry := range entries {
		if !entry.isDirectory {
			continue
		}
		childCanonical, status := walk.walker.enter(entry, canonicalPath)
		if status != enterAllowed {
			continue
		}
		walk.walker.push(childCanonical)
		walk.walkDirectory(entry.path, childCanonical, entry.relativePath)
		walk.walker.pop(childCanonical)
	}
}
