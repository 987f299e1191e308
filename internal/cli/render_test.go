package cli

import (
	"bytes"
	"testing"

	"github.com/tyemirov/foldertree/internal/services/stream"
	"github.com/tyemirov/foldertree/internal/types"
)

func sampleRenderTree() types.TreeResult {
	size := int64(5)
	return types.TreeResult{
		RootPath:       "/work/proj",
		RootName:       projectDirectoryName,
		Lines:          []types.TreeLine{{Depth: 0, Name: "README.md", SizeBytes: &size}},
		FileCount:      1,
		TotalSizeBytes: size,
	}
}

func TestTreeRendererWritesLastTreeOnFlush(testingInstance *testing.T) {
	var buffer bytes.Buffer
	renderer := newTreeRenderer(&buffer, treeRenderOptions{
		format:       types.FormatText,
		tokenCounter: stubCounter{},
		tokenModel:   stubModelName,
	})
	stale := types.TreeResult{RootName: "stale"}
	result := sampleRenderTree()
	events := []stream.Event{
		{Kind: stream.EventKindStart},
		{Kind: stream.EventKindProgress, Progress: &stream.ProgressEvent{Directory: "/work/proj"}},
		{Kind: stream.EventKindTree, Tree: &stale},
		{Kind: stream.EventKindTree, Tree: &result},
		{Kind: stream.EventKindDone},
	}
	for _, event := range events {
		if err := renderer.Handle(event); err != nil {
			testingInstance.Fatalf("Handle error: %v", err)
		}
	}
	if buffer.Len() != 0 {
		testingInstance.Fatalf("expected nothing written before flush")
	}
	if err := renderer.Flush(); err != nil {
		testingInstance.Fatalf("Flush error: %v", err)
	}
	expected := "proj/\n└── README.md\n\nFolders: 0\nFiles: 1\nTotal size: 5.0 B\nTokens: 42 (model: stub-model)\n"
	if buffer.String() != expected {
		testingInstance.Fatalf("unexpected rendering %q", buffer.String())
	}
}

func TestSearchRendererWithoutEventsWritesNothing(testingInstance *testing.T) {
	var buffer bytes.Buffer
	renderer := newSearchRenderer(&buffer, types.FormatText)
	if err := renderer.Flush(); err != nil {
		testingInstance.Fatalf("Flush error: %v", err)
	}
	if buffer.Len() != 0 {
		testingInstance.Fatalf("expected empty output, got %q", buffer.String())
	}
}
