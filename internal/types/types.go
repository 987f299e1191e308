// Package types defines every cross‑package data structure used by the foldertree CLI.
package types

import (
	"encoding/xml"
	"time"
)

const (
	CommandTree   = "tree"
	CommandSearch = "search"

	FormatText = "text"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatYAML = "yaml"
)

// DefaultExcludePatterns lists the name fragments skipped unless the caller opts out.
var DefaultExcludePatterns = []string{"__pycache__", ".git", ".DS_Store", ".pytest_cache", "node_modules"}

// TreeConfig controls a single traversal. It is not modified by the traversal.
type TreeConfig struct {
	ShowHidden bool
	// MaxDepth is the deepest level that is descended into; nil means unlimited.
	// Zero lists only the root's immediate children.
	MaxDepth        *int
	ExcludePatterns []string
	// IgnoreRules are the lines of the .gitignore and .ignore files below the root,
	// ordered so that a parent directory's rules precede its children's.
	IgnoreRules []IgnoreRule
}

// IgnoreRule is one line of a .gitignore style file. Directory is the
// slash-separated path, relative to the traversal root, of the folder holding
// the file; it is empty for the root itself.
type IgnoreRule struct {
	Directory string
	Pattern   string
}

// DefaultTreeConfig returns the configuration used when nothing else is specified.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		ShowHidden:      false,
		MaxDepth:        nil,
		ExcludePatterns: append([]string(nil), DefaultExcludePatterns...),
	}
}

// DepthLimit returns a pointer suitable for TreeConfig.MaxDepth.
func DepthLimit(depth int) *int {
	return &depth
}

// TreeLine is one visited filesystem entry.
type TreeLine struct {
	Depth        int       `json:"depth" xml:"depth,attr" yaml:"depth"`
	Name         string    `json:"name" xml:"name,attr" yaml:"name"`
	IsDirectory  bool      `json:"isDirectory" xml:"isDirectory,attr" yaml:"isDirectory"`
	SizeBytes    *int64    `json:"sizeBytes,omitempty" xml:"sizeBytes,attr,omitempty" yaml:"sizeBytes,omitempty"`
	AccessDenied bool      `json:"accessDenied,omitempty" xml:"accessDenied,attr,omitempty" yaml:"accessDenied,omitempty"`
	IsSymlink    bool      `json:"isSymlink,omitempty" xml:"isSymlink,attr,omitempty" yaml:"isSymlink,omitempty"`
	LinkCycle    bool      `json:"linkCycle,omitempty" xml:"linkCycle,attr,omitempty" yaml:"linkCycle,omitempty"`
	ModifiedAt   time.Time `json:"-" xml:"-" yaml:"-"`
}

// TreeResult is the outcome of one traversal.
type TreeResult struct {
	XMLName          xml.Name   `json:"-" xml:"tree" yaml:"-"`
	RootPath         string     `json:"rootPath" xml:"rootPath,attr" yaml:"rootPath"`
	RootName         string     `json:"rootName" xml:"rootName,attr" yaml:"rootName"`
	Lines            []TreeLine `json:"lines" xml:"line" yaml:"lines"`
	FolderCount      int        `json:"folderCount" xml:"folderCount,attr" yaml:"folderCount"`
	FileCount        int        `json:"fileCount" xml:"fileCount,attr" yaml:"fileCount"`
	TotalSizeBytes   int64      `json:"totalSizeBytes" xml:"totalSizeBytes,attr" yaml:"totalSizeBytes"`
	RootAccessDenied bool       `json:"rootAccessDenied,omitempty" xml:"rootAccessDenied,attr,omitempty" yaml:"rootAccessDenied,omitempty"`
}

// SearchMatch is one file whose name matched a search pattern.
type SearchMatch struct {
	Path         string    `json:"path" xml:"path,attr" yaml:"path"`
	RelativePath string    `json:"relativePath" xml:"relativePath,attr" yaml:"relativePath"`
	Name         string    `json:"name" xml:"name,attr" yaml:"name"`
	SizeBytes    int64     `json:"sizeBytes" xml:"sizeBytes,attr" yaml:"sizeBytes"`
	ModifiedAt   time.Time `json:"modifiedAt" xml:"modifiedAt,attr" yaml:"modifiedAt"`
}

// SearchOptions controls which entries a search visits.
type SearchOptions struct {
	ShowHidden      bool
	ExcludePatterns []string
	IgnoreRules     []IgnoreRule
}

// OutputSummary captures aggregate information about a rendered tree.
type OutputSummary struct {
	FolderCount int    `json:"folders" xml:"folders" yaml:"folders"`
	FileCount   int    `json:"files" xml:"files" yaml:"files"`
	TotalSize   string `json:"totalSize" xml:"totalSize" yaml:"totalSize"`
	TotalTokens int    `json:"totalTokens,omitempty" xml:"totalTokens,omitempty" yaml:"totalTokens,omitempty"`
	Model       string `json:"model,omitempty" xml:"model,omitempty" yaml:"model,omitempty"`
}
