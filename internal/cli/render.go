package cli

import (
	"io"

	"github.com/tyemirov/foldertree/internal/output"
	"github.com/tyemirov/foldertree/internal/services/stream"
	"github.com/tyemirov/foldertree/internal/tokenizer"
	"github.com/tyemirov/foldertree/internal/types"
)

// streamRenderer consumes stream events and writes the final rendering on Flush.
type streamRenderer interface {
	Handle(event stream.Event) error
	Flush() error
}

// treeRenderOptions controls how a tree event is rendered.
type treeRenderOptions struct {
	format         string
	text           output.TextOptions
	includeSummary bool
	// tokenCounter, when set, estimates the tokens of the rendered tree and adds them to the summary.
	tokenCounter tokenizer.Counter
	tokenModel   string
}

type treeStreamRenderer struct {
	writer  io.Writer
	options treeRenderOptions
	tree    *types.TreeResult
}

// newTreeRenderer returns a renderer that writes the last tree event it receives.
func newTreeRenderer(writer io.Writer, options treeRenderOptions) streamRenderer {
	return &treeStreamRenderer{writer: writer, options: options}
}

func (renderer *treeStreamRenderer) Handle(event stream.Event) error {
	if event.Kind == stream.EventKindTree && event.Tree != nil {
		renderer.tree = event.Tree
	}
	return nil
}

func (renderer *treeStreamRenderer) Flush() error {
	if renderer.tree == nil || renderer.writer == nil {
		return nil
	}
	var summary *types.OutputSummary
	if renderer.options.includeSummary || renderer.options.tokenCounter != nil {
		computed := output.BuildSummary(*renderer.tree)
		if renderer.options.tokenCounter != nil {
			body := output.RenderTreeText(*renderer.tree, renderer.options.text)
			counted, countError := tokenizer.CountText(renderer.options.tokenCounter, body, renderer.options.tokenModel)
			if countError != nil {
				return countError
			}
			computed.TotalTokens = counted.Tokens
			computed.Model = counted.Model
		}
		summary = &computed
	}
	rendered, renderError := output.RenderTree(renderer.options.format, *renderer.tree, summary, renderer.options.text)
	if renderError != nil {
		return renderError
	}
	_, writeError := io.WriteString(renderer.writer, rendered)
	return writeError
}

type searchStreamRenderer struct {
	writer io.Writer
	format string
	search *stream.SearchEvent
}

// newSearchRenderer returns a renderer that writes the last search event it receives.
func newSearchRenderer(writer io.Writer, format string) streamRenderer {
	return &searchStreamRenderer{writer: writer, format: format}
}

func (renderer *searchStreamRenderer) Handle(event stream.Event) error {
	if event.Kind == stream.EventKindSearch && event.Search != nil {
		renderer.search = event.Search
	}
	return nil
}

func (renderer *searchStreamRenderer) Flush() error {
	if renderer.search == nil || renderer.writer == nil {
		return nil
	}
	rendered, renderError := output.RenderSearch(renderer.format, renderer.search.Root, renderer.search.Pattern, renderer.search.Matches)
	if renderError != nil {
		return renderError
	}
	_, writeError := io.WriteString(renderer.writer, rendered)
	return writeError
}
