// Package output renders tree and search results as text, JSON, XML or YAML.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directorySuffix        = "/"
	permissionDeniedMarker = " [Permission Denied]"
	linkCycleMarker        = " -> [link cycle]"
	sizeSuffixFormat       = " (%s)"
	lineTerminator         = "\n"
)

// TextOptions controls the text rendering of a tree.
type TextOptions struct {
	ShowSizes bool
}

// RenderTreeText renders result as an indented tree headed by the root name.
func RenderTreeText(result types.TreeResult, options TextOptions) string {
	var builder strings.Builder
	builder.WriteString(result.RootName + directorySuffix)
	if result.RootAccessDenied {
		builder.WriteString(permissionDeniedMarker)
	}
	builder.WriteString(lineTerminator)

	lastFlags := lastSiblingFlags(result.Lines)
	var ancestorsLast []bool
	for index, line := range result.Lines {
		if line.Depth < len(ancestorsLast) {
			ancestorsLast = ancestorsLast[:line.Depth]
		}
		for _, ancestorLast := range ancestorsLast {
			if ancestorLast {
				builder.WriteString(treeLastPadding)
			} else {
				builder.WriteString(treeBranchPadding)
			}
		}
		if lastFlags[index] {
			builder.WriteString(treeLastConnector)
		} else {
			builder.WriteString(treeBranchConnector)
		}
		builder.WriteString(lineLabel(line, options))
		builder.WriteString(lineTerminator)
		ancestorsLast = append(ancestorsLast, lastFlags[index])
	}
	return builder.String()
}

// WriteTreeText renders result to writer.
func WriteTreeText(writer io.Writer, result types.TreeResult, options TextOptions) error {
	_, writeError := io.WriteString(writer, RenderTreeText(result, options))
	return writeError
}

func lineLabel(line types.TreeLine, options TextOptions) string {
	if line.IsDirectory {
		label := line.Name + directorySuffix
		if line.AccessDenied {
			label += permissionDeniedMarker
		}
		if line.LinkCycle {
			label += linkCycleMarker
		}
		return label
	}
	if options.ShowSizes && line.SizeBytes != nil {
		return line.Name + fmt.Sprintf(sizeSuffixFormat, utils.FormatFileSize(*line.SizeBytes))
	}
	return line.Name
}

// lastSiblingFlags reports for each line whether it is the final child of its
// parent. Lines arrive in pre-order, so a line is last when no later line at
// the same depth appears before a shallower one.
func lastSiblingFlags(lines []types.TreeLine) []bool {
	flags := make([]bool, len(lines))
	var laterSibling []bool
	for index := len(lines) - 1; index >= 0; index-- {
		depth := lines[index].Depth
		for len(laterSibling) <= depth {
			laterSibling = append(laterSibling, false)
		}
		flags[index] = !laterSibling[depth]
		laterSibling[depth] = true
		for deeper := depth + 1; deeper < len(laterSibling); deeper++ {
			laterSibling[deeper] = false
		}
	}
	return flags
}
