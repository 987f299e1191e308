// Package commands contains the traversal logic behind the tree and search commands.
package commands

import (
	"fmt"

	"github.com/tyemirov/foldertree/internal/pattern"
	"github.com/tyemirov/foldertree/internal/types"
)

// BuildTree walks rootPath depth-first with the provided configuration.
func BuildTree(rootPath string, config types.TreeConfig) (types.TreeResult, error) {
	treeBuilder := &TreeBuilder{Config: config}
	return treeBuilder.Build(rootPath)
}

// Build walks rootPath and returns the ordered tree lines with aggregate counts.
// A missing root yields NotFoundError. Unreadable directories are marked
// AccessDenied and the walk continues with their siblings.
func (treeBuilder *TreeBuilder) Build(rootPath string) (types.TreeResult, error) {
	config := treeBuilder.Config
	if config.MaxDepth != nil && *config.MaxDepth < 0 {
		return types.TreeResult{}, fmt.Errorf(errorNegativeDepthFormat, *config.MaxDepth)
	}
	root, rootError := resolveRoot(rootPath)
	if rootError != nil {
		return types.TreeResult{}, rootError
	}
	exclusions, exclusionError := pattern.NewExclusionSet(config.ExcludePatterns, config.IgnoreRules)
	if exclusionError != nil {
		return types.TreeResult{}, fmt.Errorf(errorExclusionFormat, exclusionError)
	}

	walk := &treeWalk{
		walker:   newDirectoryWalker(config.ShowHidden, exclusions, treeBuilder.Warn, treeBuilder.Progress),
		maxDepth: config.MaxDepth,
		result: types.TreeResult{
			RootPath: root.absolutePath,
			RootName: root.name,
			Lines:    []types.TreeLine{},
		},
	}
	walk.walker.push(root.canonicalPath)
	walk.result.RootAccessDenied = walk.walkDirectory(root.absolutePath, root.canonicalPath, "", 0)
	return walk.result, nil
}

type treeWalk struct {
	walker   *directoryWalker
	maxDepth *int
	result   types.TreeResult
}

// walkDirectory emits the children of directoryPath at depth and reports
// whether the directory itself could not be listed.
func (walk *treeWalk) walkDirectory(directoryPath string, canonicalPath string, relativePath string, depth int) bool {
	entries, listError := walk.walker.list(directoryPath, relativePath)
	if listError != nil {
		walk.walker.warn(directoryPath, fmt.Sprintf(warningReadDirectoryFormat, directoryPath, listError))
		return true
	}

	for _, entry := range entries {
		line := types.TreeLine{
			Depth:       depth,
			Name:        entry.name,
			IsDirectory: entry.isDirectory,
			IsSymlink:   entry.isSymlink,
		}
		if entry.info != nil {
			line.ModifiedAt = entry.info.ModTime()
		}

		if !entry.isDirectory {
			if entry.info != nil {
				size := entry.info.Size()
				line.SizeBytes = &size
				walk.result.TotalSizeBytes += size
			}
			walk.result.FileCount++
			walk.result.Lines = append(walk.result.Lines, line)
			continue
		}

		walk.result.FolderCount++
		lineIndex := len(walk.result.Lines)
		walk.result.Lines = append(walk.result.Lines, line)
		if !walk.shouldDescend(depth) {
			continue
		}

		childCanonical, status := walk.walker.enter(entry, canonicalPath)
		switch status {
		case enterLinkCycle:
			walk.result.Lines[lineIndex].LinkCycle = true
			continue
		case enterUnresolved:
			continue
		}

		walk.walker.push(childCanonical)
		denied := walk.walkDirectory(entry.path, childCanonical, entry.relativePath, depth+1)
		walk.walker.pop(childCanonical)
		if denied {
			walk.result.Lines[lineIndex].AccessDenied = true
		}
	}
	return false
}

func (walk *treeWalk) shouldDescend(depth int) bool {
	return walk.maxDepth == nil || depth < *walk.maxDepth
}
