package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header

	errorUnsupportedFormat = "unsupported format %q"
	errorEncodeFormat      = "encode %s output: %w"

	searchLineFormat    = "%s  (%s, %s)\n"
	searchFoundFormat   = "Found %d matches\n"
	searchPatternFormat = "Pattern: %s\n"
	searchFolderFormat  = "Folder: %s\n"
)

type treeDocument struct {
	XMLName xml.Name             `json:"-" xml:"result" yaml:"-"`
	Tree    types.TreeResult     `json:"tree" xml:"tree" yaml:"tree"`
	Summary *types.OutputSummary `json:"summary,omitempty" xml:"summary,omitempty" yaml:"summary,omitempty"`
}

type searchDocument struct {
	XMLName xml.Name            `json:"-" xml:"search" yaml:"-"`
	Pattern string              `json:"pattern" xml:"pattern,attr" yaml:"pattern"`
	Root    string              `json:"root" xml:"root,attr" yaml:"root"`
	Count   int                 `json:"count" xml:"count,attr" yaml:"count"`
	Matches []types.SearchMatch `json:"matches" xml:"match" yaml:"matches"`
}

// IsSupportedFormat reports whether format names a known output format.
func IsSupportedFormat(format string) bool {
	switch format {
	case types.FormatText, types.FormatJSON, types.FormatXML, types.FormatYAML:
		return true
	}
	return false
}

// RenderTree renders a tree result in the requested format. The summary is
// appended as a block for text and embedded for the structured formats.
func RenderTree(format string, result types.TreeResult, summary *types.OutputSummary, options TextOptions) (string, error) {
	if format == types.FormatText {
		rendered := RenderTreeText(result, options)
		if summary != nil {
			rendered += lineTerminator + FormatSummaryBlock(*summary)
		}
		return rendered, nil
	}
	return encodeStructured(format, treeDocument{Tree: result, Summary: summary})
}

// RenderSearch renders the matches of a search below root.
func RenderSearch(format string, root string, searchPattern string, matches []types.SearchMatch) (string, error) {
	if matches == nil {
		matches = []types.SearchMatch{}
	}
	if format == types.FormatText {
		var builder strings.Builder
		for _, match := range matches {
			fmt.Fprintf(&builder, searchLineFormat, match.RelativePath, utils.FormatFileSize(match.SizeBytes), utils.FormatTimestamp(match.ModifiedAt))
		}
		if len(matches) > 0 {
			builder.WriteString(lineTerminator)
		}
		fmt.Fprintf(&builder, searchFoundFormat, len(matches))
		fmt.Fprintf(&builder, searchPatternFormat, searchPattern)
		fmt.Fprintf(&builder, searchFolderFormat, filepath.Base(root))
		return builder.String(), nil
	}
	return encodeStructured(format, searchDocument{
		Pattern: searchPattern,
		Root:    root,
		Count:   len(matches),
		Matches: matches,
	})
}

func encodeStructured(format string, document interface{}) (string, error) {
	switch format {
	case types.FormatJSON:
		encoded, jsonEncodeError := json.MarshalIndent(document, indentPrefix, indentSpacer)
		if jsonEncodeError != nil {
			return "", fmt.Errorf(errorEncodeFormat, format, jsonEncodeError)
		}
		return string(encoded) + lineTerminator, nil
	case types.FormatXML:
		encoded, xmlMarshalError := xml.MarshalIndent(document, indentPrefix, indentSpacer)
		if xmlMarshalError != nil {
			return "", fmt.Errorf(errorEncodeFormat, format, xmlMarshalError)
		}
		return xmlHeader + string(encoded) + lineTerminator, nil
	case types.FormatYAML:
		encoded, yamlMarshalError := yaml.Marshal(document)
		if yamlMarshalError != nil {
			return "", fmt.Errorf(errorEncodeFormat, format, yamlMarshalError)
		}
		return string(encoded), nil
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}
