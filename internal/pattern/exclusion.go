package pattern

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/tyemirov/foldertree/internal/types"
)

const pathSegmentSeparator = "/"

type fragmentMatcher struct {
	glob          *Glob
	fragment      string
	directoryOnly bool
}

func (matcher fragmentMatcher) matches(name string, isDirectory bool) bool {
	if matcher.directoryOnly && !isDirectory {
		return false
	}
	if matcher.glob != nil {
		return matcher.glob.Match(name)
	}
	return strings.Contains(name, matcher.fragment)
}

// ExclusionSet decides whether a directory entry is skipped.
//
// Exclusion patterns are matched against the entry name: a pattern with
// wildcards must match the whole name, a plain pattern matches as a substring.
// A trailing slash restricts a pattern to directories.
//
// Ignore rules follow gitignore semantics relative to the directory holding
// their file: `**` spans directories, a leading slash anchors, a pattern
// without a slash matches at any depth, `!` re-includes and the last
// matching rule wins.
type ExclusionSet struct {
	fragments []fragmentMatcher
	ignored   gitignore.Matcher
}

// NewExclusionSet compiles exclusion patterns and ignore rules. Malformed
// exclusion patterns are reported; ignore rules never fail to compile.
func NewExclusionSet(excludePatterns []string, ignoreRules []types.IgnoreRule) (*ExclusionSet, error) {
	set := &ExclusionSet{}
	for _, rawPattern := range excludePatterns {
		trimmed := strings.TrimSpace(rawPattern)
		if trimmed == "" {
			continue
		}
		matcher := fragmentMatcher{}
		if strings.HasSuffix(trimmed, pathSegmentSeparator) {
			matcher.directoryOnly = true
			trimmed = strings.TrimRight(trimmed, pathSegmentSeparator)
			if trimmed == "" {
				continue
			}
		}
		if HasWildcard(trimmed) {
			glob, compileError := Compile(trimmed)
			if compileError != nil {
				return nil, compileError
			}
			matcher.glob = glob
		} else {
			matcher.fragment = trimmed
		}
		set.fragments = append(set.fragments, matcher)
	}
	var parsedRules []gitignore.Pattern
	for _, rule := range ignoreRules {
		if strings.TrimSpace(rule.Pattern) == "" {
			continue
		}
		parsedRules = append(parsedRules, gitignore.ParsePattern(rule.Pattern, splitPath(rule.Directory)))
	}
	if len(parsedRules) > 0 {
		set.ignored = gitignore.NewMatcher(parsedRules)
	}
	return set, nil
}

func splitPath(relativePath string) []string {
	normalized := strings.Trim(relativePath, pathSegmentSeparator)
	if normalized == "" || normalized == "." {
		return nil
	}
	var segments []string
	for _, segment := range strings.Split(normalized, pathSegmentSeparator) {
		if segment != "" && segment != "." {
			segments = append(segments, segment)
		}
	}
	return segments
}

// Excludes reports whether an entry should be skipped. relativePath is the
// slash-separated path from the traversal root, name its last segment.
func (set *ExclusionSet) Excludes(name string, relativePath string, isDirectory bool) bool {
	if set == nil {
		return false
	}
	for _, matcher := range set.fragments {
		if matcher.matches(name, isDirectory) {
			return true
		}
	}
	if set.ignored == nil {
		return false
	}
	pathSegments := splitPath(relativePath)
	if len(pathSegments) == 0 {
		return false
	}
	return set.ignored.Match(pathSegments, isDirectory)
}
