// Package session keeps the state a front end holds between operations: the
// selected folder, the last generated tree and the last search.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tyemirov/foldertree/internal/commands"
	"github.com/tyemirov/foldertree/internal/output"
	"github.com/tyemirov/foldertree/internal/types"
)

const (
	errorWriteExportFormat = "write export to %s: %w"
	errorExportPathFormat  = "resolve export path %s: %w"
	exportFilePermissions  = 0o644
)

var (
	// ErrNoFolder is returned when an operation needs a selected folder.
	ErrNoFolder = errors.New("no folder selected")
	// ErrNoTree is returned when exporting before a tree was generated.
	ErrNoTree = errors.New("no tree generated")
)

// Session is not safe for concurrent use.
type Session struct {
	Config types.TreeConfig
	// Warn receives the path of an entry that could not be read and the reason.
	Warn     func(path, message string)
	Progress func(update commands.ProgressUpdate)

	root         string
	lastTree     *types.TreeResult
	lastTreeWith types.TreeConfig
	lastPattern  string
	lastMatches  []types.SearchMatch
	hasSearch    bool
}

// New returns a session with the given traversal configuration.
func New(config types.TreeConfig) *Session {
	return &Session{Config: config}
}

// SelectFolder validates and selects rootPath, discarding previous results.
func (session *Session) SelectFolder(rootPath string) error {
	absolutePath, absoluteError := filepath.Abs(rootPath)
	if absoluteError != nil {
		return absoluteError
	}
	info, statError := os.Stat(absolutePath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return &commands.NotFoundError{Path: rootPath}
		}
		return statError
	}
	if !info.IsDir() {
		return &commands.NotDirectoryError{Path: rootPath}
	}
	session.root = filepath.Clean(absolutePath)
	session.lastTree = nil
	session.lastMatches = nil
	session.lastPattern = ""
	session.hasSearch = false
	return nil
}

// Root returns the selected folder or an empty string.
func (session *Session) Root() string {
	return session.root
}

// HasRoot reports whether rootPath resolves to the selected folder.
func (session *Session) HasRoot(rootPath string) bool {
	if session.root == "" {
		return false
	}
	absolutePath, absoluteError := filepath.Abs(rootPath)
	return absoluteError == nil && filepath.Clean(absolutePath) == session.root
}

// GenerateTree builds the tree of the selected folder and remembers it.
func (session *Session) GenerateTree() (types.TreeResult, error) {
	if session.root == "" {
		return types.TreeResult{}, ErrNoFolder
	}
	builder := &commands.TreeBuilder{Config: session.Config, Warn: session.Warn, Progress: session.Progress}
	result, buildError := builder.Build(session.root)
	if buildError != nil {
		return types.TreeResult{}, buildError
	}
	session.lastTree = &result
	session.lastTreeWith = session.Config
	return result, nil
}

// LastTree returns the remembered tree, if any.
func (session *Session) LastTree() (types.TreeResult, bool) {
	if session.lastTree == nil {
		return types.TreeResult{}, false
	}
	return *session.lastTree, true
}

// Search finds files in the selected folder and remembers the matches.
func (session *Session) Search(searchPattern string) ([]types.SearchMatch, error) {
	if session.root == "" {
		return nil, ErrNoFolder
	}
	searcher := &commands.Searcher{
		Options: types.SearchOptions{
			ShowHidden:      session.Config.ShowHidden,
			ExcludePatterns: session.Config.ExcludePatterns,
			IgnoreRules:     session.Config.IgnoreRules,
		},
		Warn:     session.Warn,
		Progress: session.Progress,
	}
	matches, searchError := searcher.Search(session.root, searchPattern)
	if searchError != nil {
		return matches, searchError
	}
	session.lastPattern = searchPattern
	session.lastMatches = matches
	session.hasSearch = true
	return matches, nil
}

// LastSearch returns the remembered pattern and matches.
func (session *Session) LastSearch() (string, []types.SearchMatch, bool) {
	return session.lastPattern, session.lastMatches, session.hasSearch
}

// ExportOptions controls an export.
type ExportOptions struct {
	// Destination is the output file; empty selects <root name>_structure.txt in the working directory.
	Destination string
	Text        output.TextOptions
	Summary     *types.OutputSummary
	GeneratedAt time.Time
}

// Export writes the remembered tree to a UTF-8 text file and returns its path.
func (session *Session) Export(options ExportOptions) (string, error) {
	if session.lastTree == nil {
		return "", ErrNoTree
	}
	destination := options.Destination
	if destination == "" {
		destination = output.DefaultExportFileName(session.lastTree.RootName)
	}
	absoluteDestination, absoluteError := filepath.Abs(destination)
	if absoluteError != nil {
		return "", fmt.Errorf(errorExportPathFormat, destination, absoluteError)
	}
	document := output.ExportDocument{
		Result:      *session.lastTree,
		Config:      session.lastTreeWith,
		GeneratedAt: options.GeneratedAt,
		Text:        options.Text,
		Summary:     options.Summary,
	}
	// #nosec G306
	if writeError := os.WriteFile(absoluteDestination, []byte(output.RenderExport(document)), exportFilePermissions); writeError != nil {
		return "", fmt.Errorf(errorWriteExportFormat, absoluteDestination, writeError)
	}
	return absoluteDestination, nil
}
