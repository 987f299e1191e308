package commands

import "github.com/tyemirov/foldertree/internal/types"

// TreeBuilder builds directory trees using configured options.
type TreeBuilder struct {
	Config types.TreeConfig
	// Warn receives the path of an entry that was skipped or could not be read,
	// with a message describing why.
	Warn func(path, message string)
	// Progress is invoked after each directory listing.
	Progress func(update ProgressUpdate)
}

// Searcher finds files by name using configured options.
type Searcher struct {
	Options  types.SearchOptions
	Warn     func(path, message string)
	Progress func(update ProgressUpdate)
}
