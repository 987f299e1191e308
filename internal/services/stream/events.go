package stream

import (
	"encoding/xml"
	"time"

	"github.com/tyemirov/foldertree/internal/types"
)

const SchemaVersion = 1

type EventKind string

const (
	EventKindStart    EventKind = "start"
	EventKindProgress EventKind = "progress"
	EventKindWarning  EventKind = "warning"
	EventKindTree     EventKind = "tree"
	EventKindSearch   EventKind = "search"
	EventKindDone     EventKind = "done"
)

type Event struct {
	XMLName   xml.Name  `json:"-" xml:"event"`
	Version   int       `json:"version" xml:"version,attr"`
	Kind      EventKind `json:"kind" xml:"kind,attr"`
	Command   string    `json:"command,omitempty" xml:"command,attr,omitempty"`
	Path      string    `json:"path,omitempty" xml:"path,attr,omitempty"`
	EmittedAt time.Time `json:"emittedAt,omitempty" xml:"emittedAt,attr,omitempty"`

	Progress *ProgressEvent    `json:"progress,omitempty" xml:"progress,omitempty"`
	Message  *LogEvent         `json:"message,omitempty" xml:"message,omitempty"`
	Tree     *types.TreeResult `json:"tree,omitempty" xml:"tree,omitempty"`
	Search   *SearchEvent      `json:"search,omitempty" xml:"search,omitempty"`
}

// ProgressEvent is emitted after each directory listing.
type ProgressEvent struct {
	Directory          string `json:"directory" xml:"directory,attr"`
	Entries            int    `json:"entries" xml:"entries,attr"`
	DirectoriesScanned int    `json:"directoriesScanned" xml:"directoriesScanned,attr"`
}

type LogEvent struct {
	Level   string `json:"level,omitempty" xml:"level,attr,omitempty"`
	Message string `json:"message" xml:",chardata"`
}

// SearchEvent carries the complete result of a pattern search.
type SearchEvent struct {
	Pattern string              `json:"pattern" xml:"pattern,attr"`
	Root    string              `json:"root" xml:"root,attr"`
	Matches []types.SearchMatch `json:"matches" xml:"match"`
}
