package output_test

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tyemirov/foldertree/internal/output"
	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

func sizePointer(value int64) *int64 {
	return &value
}

var sampleModifiedAt = time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

func sampleResult() types.TreeResult {
	return types.TreeResult{
		RootPath: "/work/proj",
		RootName: "proj",
		Lines: []types.TreeLine{
			{Depth: 0, Name: "src", IsDirectory: true},
			{Depth: 1, Name: "main.go", SizeBytes: sizePointer(12)},
			{Depth: 1, Name: "util", IsDirectory: true},
			{Depth: 2, Name: "x.txt", SizeBytes: sizePointer(0)},
			{Depth: 0, Name: "README.md", SizeBytes: sizePointer(1536)},
		},
		FolderCount:    2,
		FileCount:      3,
		TotalSizeBytes: 1548,
	}
}

const sampleTreeText = "proj/\n" +
	"├── src/\n" +
	"│   ├── main.go\n" +
	"│   └── util/\n" +
	"│       └── x.txt\n" +
	"└── README.md\n"

func TestRenderTreeText(testingInstance *testing.T) {
	testCases := []struct {
		name     string
		result   types.TreeResult
		options  output.TextOptions
		expected string
	}{
		{
			name:     "connectors",
			result:   sampleResult(),
			expected: sampleTreeText,
		},
		{
			name:    "sizes",
			result:  sampleResult(),
			options: output.TextOptions{ShowSizes: true},
			expected: "proj/\n" +
				"├── src/\n" +
				"│   ├── main.go (12.0 B)\n" +
				"│   └── util/\n" +
				"│       └── x.txt (0.0 B)\n" +
				"└── README.md (1.5 KB)\n",
		},
		{
			name: "markers",
			result: types.TreeResult{
				RootName: "root",
				Lines: []types.TreeLine{
					{Depth: 0, Name: "locked", IsDirectory: true, AccessDenied: true},
					{Depth: 0, Name: "loop", IsDirectory: true, IsSymlink: true, LinkCycle: true},
					{Depth: 0, Name: "broken", IsSymlink: true},
				},
			},
			options: output.TextOptions{ShowSizes: true},
			expected: "root/\n" +
				"├── locked/ [Permission Denied]\n" +
				"├── loop/ -> [link cycle]\n" +
				"└── broken\n",
		},
		{
			name:     "denied_root",
			result:   types.TreeResult{RootName: "secret", RootAccessDenied: true, Lines: []types.TreeLine{}},
			expected: "secret/ [Permission Denied]\n",
		},
		{
			name: "deep_last_branch_then_sibling",
			result: types.TreeResult{
				RootName: "r",
				Lines: []types.TreeLine{
					{Depth: 0, Name: "a", IsDirectory: true},
					{Depth: 1, Name: "b", IsDirectory: true},
					{Depth: 2, Name: "c"},
					{Depth: 0, Name: "d", IsDirectory: true},
					{Depth: 1, Name: "e"},
					{Depth: 1, Name: "f"},
				},
			},
			expected: "r/\n" +
				"├── a/\n" +
				"│   └── b/\n" +
				"│       └── c\n" +
				"└── d/\n" +
				"    ├── e\n" +
				"    └── f\n",
		},
	}

	for _, testCase := range testCases {
		testingInstance.Run(testCase.name, func(subTest *testing.T) {
			actual := output.RenderTreeText(testCase.result, testCase.options)
			if actual != testCase.expected {
				subTest.Fatalf("unexpected rendering:\n%s\nexpected:\n%s", actual, testCase.expected)
			}
		})
	}
}

func TestWriteTreeText(testingInstance *testing.T) {
	var buffer bytes.Buffer
	if err := output.WriteTreeText(&buffer, sampleResult(), output.TextOptions{}); err != nil {
		testingInstance.Fatalf("WriteTreeText error: %v", err)
	}
	if buffer.String() != sampleTreeText {
		testingInstance.Fatalf("unexpected output: %q", buffer.String())
	}
}

func TestFormatSummaryBlock(testingInstance *testing.T) {
	summary := output.BuildSummary(sampleResult())
	expected := "Folders: 2\nFiles: 3\nTotal size: 1.5 KB\n"
	if actual := output.FormatSummaryBlock(summary); actual != expected {
		testingInstance.Fatalf("unexpected summary %q", actual)
	}
	summary.TotalTokens = 42
	summary.Model = "gpt-4o"
	expectedWithTokens := expected + "Tokens: 42 (model: gpt-4o)\n"
	if actual := output.FormatSummaryBlock(summary); actual != expectedWithTokens {
		testingInstance.Fatalf("unexpected summary with tokens %q", actual)
	}
}

func TestRenderExport(testingInstance *testing.T) {
	generatedAt := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.Local)
	config := types.TreeConfig{MaxDepth: types.DepthLimit(2), ExcludePatterns: []string{".git", "", "node_modules"}}
	actual := output.RenderExport(output.ExportDocument{
		Result:      sampleResult(),
		Config:      config,
		GeneratedAt: generatedAt,
	})
	expected := "# Folder Tree\n" +
		"# Root: /work/proj\n" +
		"# Generated on: 2026-10-19 12:00:00\n" +
		"# Options: Hide hidden, Max depth: 2, Excluded: .git, node_modules\n" +
		"\n" +
		sampleTreeText +
		"\n" +
		"Folders: 2\nFiles: 3\nTotal size: 1.5 KB\n"
	if actual != expected {
		testingInstance.Fatalf("unexpected export:\n%s\nexpected:\n%s", actual, expected)
	}
}

func TestFormatOptionsLine(testingInstance *testing.T) {
	testCases := []struct {
		name     string
		config   types.TreeConfig
		expected string
	}{
		{name: "defaults", config: types.TreeConfig{}, expected: "Hide hidden, Max depth: Unlimited, Excluded: none"},
		{name: "show_hidden_depth_zero", config: types.TreeConfig{ShowHidden: true, MaxDepth: types.DepthLimit(0)}, expected: "Show hidden, Max depth: 0, Excluded: none"},
		{name: "ignore_rules", config: types.TreeConfig{ExcludePatterns: []string{"dist"}, IgnoreRules: []types.IgnoreRule{{Pattern: "*.log"}, {Directory: "sub", Pattern: "tmp/"}}}, expected: "Hide hidden, Max depth: Unlimited, Excluded: dist, Ignore rules: 2"},
	}
	for _, testCase := range testCases {
		if actual := output.FormatOptionsLine(testCase.config); actual != testCase.expected {
			testingInstance.Errorf("%s: expected %q, got %q", testCase.name, testCase.expected, actual)
		}
	}
}

func TestDefaultExportFileName(testingInstance *testing.T) {
	if actual := output.DefaultExportFileName("proj"); actual != "proj_structure.txt" {
		testingInstance.Fatalf("unexpected file name %q", actual)
	}
}

func TestRenderTreeStructuredFormats(testingInstance *testing.T) {
	summary := output.BuildSummary(sampleResult())

	jsonText, jsonError := output.RenderTree(types.FormatJSON, sampleResult(), &summary, output.TextOptions{})
	if jsonError != nil {
		testingInstance.Fatalf("json render error: %v", jsonError)
	}
	var decoded struct {
		Tree    types.TreeResult    `json:"tree"`
		Summary types.OutputSummary `json:"summary"`
	}
	if err := json.Unmarshal([]byte(jsonText), &decoded); err != nil {
		testingInstance.Fatalf("invalid json: %v", err)
	}
	if len(decoded.Tree.Lines) != 5 || decoded.Tree.Lines[1].SizeBytes == nil || *decoded.Tree.Lines[1].SizeBytes != 12 {
		testingInstance.Fatalf("unexpected decoded lines: %+v", decoded.Tree.Lines)
	}
	if decoded.Summary.FileCount != 3 || decoded.Summary.TotalSize != "1.5 KB" {
		testingInstance.Fatalf("unexpected decoded summary: %+v", decoded.Summary)
	}

	xmlText, xmlError := output.RenderTree(types.FormatXML, sampleResult(), nil, output.TextOptions{})
	if xmlError != nil {
		testingInstance.Fatalf("xml render error: %v", xmlError)
	}
	if !strings.HasPrefix(xmlText, xml.Header) || !strings.Contains(xmlText, `<line depth="0" name="src" isDirectory="true"></line>`) {
		testingInstance.Fatalf("unexpected xml:\n%s", xmlText)
	}

	yamlText, yamlError := output.RenderTree(types.FormatYAML, sampleResult(), &summary, output.TextOptions{})
	if yamlError != nil {
		testingInstance.Fatalf("yaml render error: %v", yamlError)
	}
	var yamlDecoded map[string]interface{}
	if err := yaml.Unmarshal([]byte(yamlText), &yamlDecoded); err != nil {
		testingInstance.Fatalf("invalid yaml: %v", err)
	}
	if _, ok := yamlDecoded["tree"]; !ok {
		testingInstance.Fatalf("yaml missing tree key:\n%s", yamlText)
	}

	if _, err := output.RenderTree("toml", sampleResult(), nil, output.TextOptions{}); err == nil {
		testingInstance.Fatalf("expected unsupported format error")
	}
}

func TestRenderTreeTextWithSummary(testingInstance *testing.T) {
	summary := output.BuildSummary(sampleResult())
	rendered, err := output.RenderTree(types.FormatText, sampleResult(), &summary, output.TextOptions{})
	if err != nil {
		testingInstance.Fatalf("render error: %v", err)
	}
	if rendered != sampleTreeText+"\nFolders: 2\nFiles: 3\nTotal size: 1.5 KB\n" {
		testingInstance.Fatalf("unexpected rendering %q", rendered)
	}
}

func TestRenderSearch(testingInstance *testing.T) {
	matches := []types.SearchMatch{
		{Path: "/work/proj/a.py", RelativePath: "a.py", Name: "a.py", SizeBytes: 8, ModifiedAt: sampleModifiedAt},
		{Path: "/work/proj/sub/c.py", RelativePath: "sub/c.py", Name: "c.py", SizeBytes: 2048, ModifiedAt: sampleModifiedAt},
	}
	text, err := output.RenderSearch(types.FormatText, "/work/proj", "*.py", matches)
	if err != nil {
		testingInstance.Fatalf("render error: %v", err)
	}
	timestamp := utils.FormatTimestamp(sampleModifiedAt)
	expected := "a.py  (8.0 B, " + timestamp + ")\n" +
		"sub/c.py  (2.0 KB, " + timestamp + ")\n" +
		"\n" +
		"Found 2 matches\n" +
		"Pattern: *.py\n" +
		"Folder: proj\n"
	if text != expected {
		testingInstance.Fatalf("unexpected search text:\n%s\nexpected:\n%s", text, expected)
	}

	empty, err := output.RenderSearch(types.FormatText, "/work/proj", "*.rs", nil)
	if err != nil || !strings.HasPrefix(empty, "Found 0 matches\n") {
		testingInstance.Fatalf("unexpected empty search rendering %q (%v)", empty, err)
	}

	jsonText, err := output.RenderSearch(types.FormatJSON, "/work/proj", "*.rs", nil)
	if err != nil || !strings.Contains(jsonText, `"matches": []`) {
		testingInstance.Fatalf("expected empty json matches array, got %s (%v)", jsonText, err)
	}
}
