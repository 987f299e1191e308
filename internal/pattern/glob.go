// Package pattern implements the wildcard predicates used for searching and excluding entries.
//
// Matching is an explicit token walk rather than a translation to regular
// expressions: `*` matches any run of characters and `?` exactly one. Every
// other character, brackets and backslashes included, matches itself.
package pattern

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	wildcardAnyRun     = '*'
	wildcardAnyOne     = '?'
	wildcardCharacters = "*?"
	nulCharacter       = '\x00'
	hiddenPrefix       = "."

	reasonInvalidEncoding = "invalid UTF-8"
	reasonNulCharacter    = "NUL character"
)

// ErrInvalidPattern is matched by every InvalidPatternError.
var ErrInvalidPattern = errors.New("invalid pattern")

// InvalidPatternError reports a malformed wildcard pattern.
type InvalidPatternError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (patternError *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q at offset %d: %s", patternError.Pattern, patternError.Offset, patternError.Reason)
}

// Is lets errors.Is match ErrInvalidPattern.
func (patternError *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenAnyOne
	tokenAnyRun
)

type token struct {
	kind    tokenKind
	literal rune
}

func (current token) matchesRune(value rune) bool {
	switch current.kind {
	case tokenLiteral:
		return current.literal == value
	case tokenAnyOne:
		return true
	default:
		return false
	}
}

// Glob is a compiled wildcard pattern.
type Glob struct {
	raw             string
	tokens          []token
	caseInsensitive bool
}

// Option customizes compilation.
type Option func(*Glob)

// CaseInsensitive makes the glob ignore letter case.
func CaseInsensitive() Option {
	return func(glob *Glob) {
		glob.caseInsensitive = true
	}
}

// HasWildcard reports whether the pattern contains a wildcard.
func HasWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, wildcardCharacters)
}

// Compile parses pattern into a Glob. Only text that can never be a file
// name, invalid UTF-8 or a NUL byte, is rejected.
func Compile(pattern string, options ...Option) (*Glob, error) {
	if invalidError := validatePattern(pattern); invalidError != nil {
		return nil, invalidError
	}
	glob := &Glob{raw: pattern}
	for _, option := range options {
		option(glob)
	}
	source := pattern
	if glob.caseInsensitive {
		source = strings.ToLower(pattern)
	}
	for _, current := range source {
		switch current {
		case wildcardAnyRun:
			if length := len(glob.tokens); length > 0 && glob.tokens[length-1].kind == tokenAnyRun {
				continue
			}
			glob.tokens = append(glob.tokens, token{kind: tokenAnyRun})
		case wildcardAnyOne:
			glob.tokens = append(glob.tokens, token{kind: tokenAnyOne})
		default:
			glob.tokens = append(glob.tokens, token{kind: tokenLiteral, literal: current})
		}
	}
	return glob, nil
}

func validatePattern(pattern string) *InvalidPatternError {
	for offset, current := range pattern {
		if current == utf8.RuneError {
			if _, width := utf8.DecodeRuneInString(pattern[offset:]); width == 1 {
				return &InvalidPatternError{Pattern: pattern, Offset: offset, Reason: reasonInvalidEncoding}
			}
		}
		if current == nulCharacter {
			return &InvalidPatternError{Pattern: pattern, Offset: offset, Reason: reasonNulCharacter}
		}
	}
	return nil
}

// Match reports whether the whole of name matches the glob.
func (glob *Glob) Match(name string) bool {
	if glob == nil {
		return false
	}
	if glob.caseInsensitive {
		name = strings.ToLower(name)
	}
	subject := []rune(name)

	tokenIndex := 0
	subjectIndex := 0
	starTokenIndex := -1
	starSubjectIndex := 0
	for subjectIndex < len(subject) {
		if tokenIndex < len(glob.tokens) {
			current := glob.tokens[tokenIndex]
			if current.kind == tokenAnyRun {
				starTokenIndex = tokenIndex
				starSubjectIndex = subjectIndex
				tokenIndex++
				continue
			}
			if current.matchesRune(subject[subjectIndex]) {
				tokenIndex++
				subjectIndex++
				continue
			}
		}
		if starTokenIndex < 0 {
			return false
		}
		starSubjectIndex++
		subjectIndex = starSubjectIndex
		tokenIndex = starTokenIndex + 1
	}
	for tokenIndex < len(glob.tokens) && glob.tokens[tokenIndex].kind == tokenAnyRun {
		tokenIndex++
	}
	return tokenIndex == len(glob.tokens)
}

// String returns the source pattern.
func (glob *Glob) String() string {
	if glob == nil {
		return ""
	}
	return glob.raw
}

// NameMatcher is the predicate used by file search: a wildcard pattern is matched
// against the whole name, a plain pattern as a substring. Both ignore case.
type NameMatcher struct {
	glob      *Glob
	substring string
	empty     bool
}

// NewNameMatcher compiles a search pattern. An empty pattern matches nothing.
func NewNameMatcher(pattern string) (*NameMatcher, error) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return &NameMatcher{empty: true}, nil
	}
	if !HasWildcard(trimmed) {
		if invalidError := validatePattern(trimmed); invalidError != nil {
			return nil, invalidError
		}
		return &NameMatcher{substring: strings.ToLower(trimmed)}, nil
	}
	glob, compileError := Compile(trimmed, CaseInsensitive())
	if compileError != nil {
		return nil, compileError
	}
	return &NameMatcher{glob: glob}, nil
}

// Match tests a file name.
func (matcher *NameMatcher) Match(name string) bool {
	if matcher == nil || matcher.empty {
		return false
	}
	if matcher.glob != nil {
		return matcher.glob.Match(name)
	}
	return strings.Contains(strings.ToLower(name), matcher.substring)
}

// IsEmpty reports whether the matcher was built from an empty pattern.
func (matcher *NameMatcher) IsEmpty() bool {
	return matcher == nil || matcher.empty
}

// IsHidden reports whether an entry name is a dot entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, hiddenPrefix)
}
