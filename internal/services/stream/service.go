package stream

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tyemirov/foldertree/internal/commands"
	"github.com/tyemirov/foldertree/internal/session"
	"github.com/tyemirov/foldertree/internal/types"
)

const (
	warningLevel     = "warning"
	errorNilChannel  = "stream: event channel is nil"
	errorEmptyTree   = "stream: tree root path is empty"
	errorEmptySearch = "stream: search root path is empty"
)

// TreeOptions selects the folder a tree stream lists. When Session is set the
// tree is generated in, and remembered by, that session and Config is ignored.
type TreeOptions struct {
	Root    string
	Config  types.TreeConfig
	Session *session.Session
}

// SearchOptions selects the folder and pattern of a search stream. Session
// follows the same rules as in TreeOptions.
type SearchOptions struct {
	Root    string
	Pattern string
	Config  types.TreeConfig
	Session *session.Session
}

// emitter forwards events to the consumer until the context is done. The
// traversal itself keeps running; events sent after cancellation are dropped.
type emitter struct {
	ctx     context.Context
	out     chan<- Event
	command string
}

func newEmitter(ctx context.Context, out chan<- Event, command string) *emitter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &emitter{ctx: ctx, out: out, command: command}
}

func (e *emitter) send(event Event) error {
	if e.out == nil {
		return fmt.Errorf(errorNilChannel)
	}
	event.Version = SchemaVersion
	if event.Command == "" {
		event.Command = e.command
	}
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now().UTC()
	}
	select {
	case <-e.ctx.Done():
		return e.ctx.Err()
	case e.out <- event:
		return nil
	}
}

func (e *emitter) warn(path, message string) {
	trimmed := strings.TrimRight(message, "\n")
	if trimmed == "" {
		return
	}
	_ = e.send(Event{
		Kind:    EventKindWarning,
		Path:    path,
		Message: &LogEvent{Level: warningLevel, Message: trimmed},
	})
}

func (e *emitter) progress(update commands.ProgressUpdate) {
	_ = e.send(Event{
		Kind: EventKindProgress,
		Path: update.Directory,
		Progress: &ProgressEvent{
			Directory:          update.Directory,
			Entries:            update.Entries,
			DirectoriesScanned: update.DirectoriesScanned,
		},
	})
}

// attach points the session at root, unless it is already there, and routes
// its warnings and progress to the emitter until the returned restore runs.
func (e *emitter) attach(current *session.Session, root string) (func(), error) {
	if !current.HasRoot(root) {
		if selectError := current.SelectFolder(root); selectError != nil {
			return func() {}, selectError
		}
	}
	previousWarn, previousProgress := current.Warn, current.Progress
	current.Warn = e.warn
	current.Progress = e.progress
	return func() {
		current.Warn = previousWarn
		current.Progress = previousProgress
	}, nil
}

// StreamTree builds the tree for opts.Root and reports start, progress,
// warning, tree and done events on out. A traversal error is returned without
// a tree event.
func StreamTree(ctx context.Context, opts TreeOptions, out chan<- Event) error {
	if opts.Root == "" {
		return fmt.Errorf(errorEmptyTree)
	}

	emitter := newEmitter(ctx, out, types.CommandTree)
	if err := emitter.send(Event{Kind: EventKindStart, Path: opts.Root}); err != nil {
		return err
	}

	current := opts.Session
	if current == nil {
		current = session.New(opts.Config)
	}
	restore, attachError := emitter.attach(current, opts.Root)
	defer restore()
	if attachError != nil {
		return attachError
	}
	result, buildError := current.GenerateTree()
	if buildError != nil {
		return buildError
	}

	if err := emitter.send(Event{Kind: EventKindTree, Path: result.RootPath, Tree: &result}); err != nil {
		return err
	}
	return emitter.send(Event{Kind: EventKindDone, Path: result.RootPath})
}

// StreamSearch runs a pattern search below opts.Root and reports its events on out.
func StreamSearch(ctx context.Context, opts SearchOptions, out chan<- Event) error {
	if opts.Root == "" {
		return fmt.Errorf(errorEmptySearch)
	}

	emitter := newEmitter(ctx, out, types.CommandSearch)
	if err := emitter.send(Event{Kind: EventKindStart, Path: opts.Root}); err != nil {
		return err
	}

	current := opts.Session
	if current == nil {
		current = session.New(opts.Config)
	}
	restore, attachError := emitter.attach(current, opts.Root)
	defer restore()
	if attachError != nil {
		return attachError
	}
	matches, searchError := current.Search(opts.Pattern)
	if searchError != nil {
		return searchError
	}

	searchRoot := current.Root()
	searchEvent := &SearchEvent{Pattern: opts.Pattern, Root: searchRoot, Matches: matches}
	if err := emitter.send(Event{Kind: EventKindSearch, Path: searchRoot, Search: searchEvent}); err != nil {
		return err
	}
	return emitter.send(Event{Kind: EventKindDone, Path: searchRoot})
}
