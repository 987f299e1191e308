package output

import (
	"fmt"
	"strings"

	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

const (
	summaryFoldersFormat = "Folders: %d\n"
	summaryFilesFormat   = "Files: %d\n"
	summarySizeFormat    = "Total size: %s\n"
	summaryTokensFormat  = "Tokens: %d"
	summaryModelFormat   = " (model: %s)"
)

// BuildSummary computes the aggregate block for a tree result.
func BuildSummary(result types.TreeResult) types.OutputSummary {
	return types.OutputSummary{
		FolderCount: result.FolderCount,
		FileCount:   result.FileCount,
		TotalSize:   utils.FormatFileSize(result.TotalSizeBytes),
	}
}

// FormatSummaryBlock formats an OutputSummary as newline terminated lines.
func FormatSummaryBlock(summary types.OutputSummary) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, summaryFoldersFormat, summary.FolderCount)
	fmt.Fprintf(&builder, summaryFilesFormat, summary.FileCount)
	fmt.Fprintf(&builder, summarySizeFormat, summary.TotalSize)
	if summary.TotalTokens > 0 {
		fmt.Fprintf(&builder, summaryTokensFormat, summary.TotalTokens)
		if summary.Model != "" {
			fmt.Fprintf(&builder, summaryModelFormat, summary.Model)
		}
		builder.WriteString(lineTerminator)
	}
	return builder.String()
}
