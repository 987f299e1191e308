package output

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

const (
	exportTitleLine        = "# Folder Tree\n"
	exportRootFormat       = "# Root: %s\n"
	exportGeneratedFormat  = "# Generated on: %s\n"
	exportOptionsFormat    = "# Options: %s\n"
	exportFileNameSuffix   = "_structure.txt"
	optionShowHidden       = "Show hidden"
	optionHideHidden       = "Hide hidden"
	optionMaxDepthFormat   = "Max depth: %s"
	optionUnlimitedDepth   = "Unlimited"
	optionExcludedFormat   = "Excluded: %s"
	optionNothingExcluded  = "none"
	optionIgnoreRuleFormat = "Ignore rules: %d"
	optionSeparator        = ", "
)

// ExportDocument is everything that goes into an exported text file.
type ExportDocument struct {
	Result      types.TreeResult
	Config      types.TreeConfig
	GeneratedAt time.Time
	Text        TextOptions
	// Summary overrides the block computed from Result, for example to carry a token count.
	Summary *types.OutputSummary
}

// DefaultExportFileName returns the file name proposed for exporting a tree of rootName.
func DefaultExportFileName(rootName string) string {
	return rootName + exportFileNameSuffix
}

// FormatOptionsLine describes the traversal options recorded in the export header.
func FormatOptionsLine(config types.TreeConfig) string {
	hiddenLabel := optionHideHidden
	if config.ShowHidden {
		hiddenLabel = optionShowHidden
	}
	depthLabel := optionUnlimitedDepth
	if config.MaxDepth != nil {
		depthLabel = strconv.Itoa(*config.MaxDepth)
	}
	excludedLabel := optionNothingExcluded
	if patterns := nonBlank(config.ExcludePatterns); len(patterns) > 0 {
		excludedLabel = strings.Join(patterns, optionSeparator)
	}
	parts := []string{
		hiddenLabel,
		fmt.Sprintf(optionMaxDepthFormat, depthLabel),
		fmt.Sprintf(optionExcludedFormat, excludedLabel),
	}
	if len(config.IgnoreRules) > 0 {
		parts = append(parts, fmt.Sprintf(optionIgnoreRuleFormat, len(config.IgnoreRules)))
	}
	return strings.Join(parts, optionSeparator)
}

// RenderExport produces the UTF-8 text written by the export command: a
// metadata header, the rendered tree and the summary block.
func RenderExport(document ExportDocument) string {
	generatedAt := document.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	summary := BuildSummary(document.Result)
	if document.Summary != nil {
		summary = *document.Summary
	}

	var builder strings.Builder
	builder.WriteString(exportTitleLine)
	fmt.Fprintf(&builder, exportRootFormat, document.Result.RootPath)
	fmt.Fprintf(&builder, exportGeneratedFormat, utils.FormatTimestamp(generatedAt))
	fmt.Fprintf(&builder, exportOptionsFormat, FormatOptionsLine(document.Config))
	builder.WriteString(lineTerminator)
	builder.WriteString(RenderTreeText(document.Result, document.Text))
	builder.WriteString(lineTerminator)
	builder.WriteString(FormatSummaryBlock(summary))
	return builder.String()
}

func nonBlank(values []string) []string {
	var result []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
