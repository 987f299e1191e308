// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tyemirov/foldertree/internal/config"
	"github.com/tyemirov/foldertree/internal/output"
	"github.com/tyemirov/foldertree/internal/pattern"
	"github.com/tyemirov/foldertree/internal/services/clipboard"
	"github.com/tyemirov/foldertree/internal/services/stream"
	"github.com/tyemirov/foldertree/internal/session"
	"github.com/tyemirov/foldertree/internal/tokenizer"
	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

const (
	versionFlagName           = "version"
	configFlagName            = "config"
	hiddenFlagName            = "hidden"
	depthFlagName             = "depth"
	exclusionFlagName         = "exclude"
	exclusionFlagShorthand    = "e"
	noDefaultExcludesFlagName = "no-default-excludes"
	noGitignoreFlagName       = "no-gitignore"
	noIgnoreFlagName          = "no-ignore"
	formatFlagName            = "format"
	sizesFlagName             = "sizes"
	summaryFlagName           = "summary"
	copyFlagName              = "copy"
	tokensFlagName            = "tokens"
	modelFlagName             = "model"
	progressFlagName          = "progress"
	outputFlagName            = "output"
	outputFlagShorthand       = "o"
	globalFlagName            = "global"
	forceFlagName             = "force"

	versionTemplate      = "foldertree version: %s\n"
	defaultPath          = "."
	rootUse              = "foldertree"
	rootShortDescription = "foldertree renders folder structures"
	rootLongDescription  = `foldertree lists a folder recursively and renders it as an indented tree.
It also finds files by name with wildcard patterns and exports trees to text files.
Settings are read from ~/.foldertree/config.yaml and ./.foldertree.yaml; flags take precedence.`

	treeUse                = "tree [path]"
	searchUse              = "search <pattern> [path]"
	exportUse              = "export [path]"
	initUse                = "init"
	treeAlias              = "t"
	searchAlias            = "s"
	exportAlias            = "x"
	treeShortDescription   = "display folder tree (" + treeAlias + ")"
	searchShortDescription = "find files by name (" + searchAlias + ")"
	exportShortDescription = "save folder tree to a text file (" + exportAlias + ")"
	initShortDescription   = "write a default configuration file"

	treeLongDescription = `List the folders and files below a path as a tree.
Directories come first, each group sorted case-insensitively.
Use --depth to limit recursion, --hidden to show dot entries and --format to select text, json, xml or yaml.`
	treeUsageExample = `  # Render two levels of the current folder with file sizes
  foldertree tree --depth 1 --sizes

  # Exclude build output and copy the tree to the clipboard
  foldertree tree -e build -e "*.log" --copy ./project`
	searchLongDescription = `Find files whose names match a pattern.
Only * and ? are wildcards and matching ignores case; every other character, brackets included, is literal.
A pattern without wildcards matches any name containing it.`
	searchUsageExample = `  # Find Python files
  foldertree search "*.py" ./project

  # Find files whose name contains "readme"
  foldertree search readme`
	exportLongDescription = `Write the tree, a metadata header and a summary to a UTF-8 text file.
The default file name is <folder name>_structure.txt in the current directory.`
	exportUsageExample = `  # Export the current folder
  foldertree export

  # Export with sizes to a chosen file
  foldertree export --sizes -o tree.txt ./project`
	initLongDescription = `Write a commented configuration template to ./.foldertree.yaml or, with --global, to ~/.foldertree/config.yaml.`

	versionFlagDescription           = "display application version"
	configFlagDescription            = "configuration file to use instead of ./.foldertree.yaml"
	hiddenFlagDescription            = "show entries whose names start with a dot"
	depthFlagDescription             = "maximum depth to descend into (integer or unlimited)"
	exclusionFlagDescription         = "exclude entries matching a name pattern (repeatable, comma separated)"
	noDefaultExcludesFlagDescription = "do not exclude .git, node_modules and similar folders"
	disableGitignoreFlagDescription  = "do not use .gitignore"
	disableIgnoreFlagDescription     = "do not use .ignore"
	formatFlagDescription            = "output format: text, json, xml or yaml"
	sizesFlagDescription             = "show file sizes"
	summaryFlagDescription           = "append folder, file and size totals"
	copyFlagDescription              = "copy the output to the clipboard"
	tokensFlagDescription            = "estimate the token count of the rendered tree"
	modelFlagDescription             = "tokenizer model used for token estimates"
	progressFlagDescription          = "log progress while scanning"
	outputFlagDescription            = "export destination file"
	globalFlagDescription            = "write the global configuration"
	forceFlagDescription             = "overwrite an existing configuration file"

	invalidFormatMessage     = "invalid format value '%s'"
	loadConfigurationFormat  = "load configuration: %w"
	loadIgnoreRulesFormat    = "load ignore files for %s: %w"
	invalidPatternListFormat = "invalid exclude pattern: %w"
	exportCompletedFormat    = "Structure saved to %s\n"
	initCompletedFormat      = "Configuration written to %s\n"
	clipboardCopiedMessage   = "copied output to clipboard"
	clipboardFailedMessage   = "failed to copy output to clipboard"
	warningLogMessage        = "traversal warning"
	progressLogMessage       = "scanned directory"
	logFieldPath             = "path"
	logFieldMessage          = "message"
	logFieldBytes            = "bytes"
	logFieldDirectory        = "directory"
	logFieldEntries          = "entries"
	logFieldScanned          = "directoriesScanned"
)

// Dependencies are the collaborators of the command tree.
type Dependencies struct {
	Logger     *zap.Logger
	Stdout     io.Writer
	Copier     clipboard.Copier
	NewCounter func(tokenizer.Config) (tokenizer.Counter, string, error)
	Now        func() time.Time
}

type application struct {
	logger        *zap.Logger
	stdout        io.Writer
	copier        clipboard.Copier
	newCounter    func(tokenizer.Config) (tokenizer.Counter, string, error)
	now           func() time.Time
	configPath    string
	configuration config.ApplicationConfiguration
}

func newApplication(dependencies Dependencies) *application {
	app := &application{
		logger:     dependencies.Logger,
		stdout:     dependencies.Stdout,
		copier:     dependencies.Copier,
		newCounter: dependencies.NewCounter,
		now:        dependencies.Now,
	}
	if app.logger == nil {
		app.logger = zap.NewNop()
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.copier == nil {
		app.copier = clipboard.NewService()
	}
	if app.newCounter == nil {
		app.newCounter = tokenizer.NewCounter
	}
	if app.now == nil {
		app.now = time.Now
	}
	return app
}

// Execute runs the foldertree application.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(Dependencies{Logger: logger})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	app := newApplication(dependencies)
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(app.stdout, versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
			if command.Name() == initUse {
				return nil
			}
			loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: app.configPath})
			if loadError != nil {
				return fmt.Errorf(loadConfigurationFormat, loadError)
			}
			app.configuration = loaded
			return nil
		},
	}
	rootCommand.SetOut(app.stdout)
	registerBooleanFlag(rootCommand.PersistentFlags(), &showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&app.configPath, configFlagName, "", configFlagDescription)
	rootCommand.AddCommand(
		app.createTreeCommand(),
		app.createSearchCommand(),
		app.createExportCommand(),
		app.createInitCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// traversalOptions stores the flags shared by every command that walks a folder.
type traversalOptions struct {
	showHidden        bool
	maxDepth          *int
	exclusionPatterns []string
	noDefaultExcludes bool
	disableGitignore  bool
	disableIgnoreFile bool
	progress          bool
}

type tokenOptions struct {
	enabled bool
	model   string
}

func addTraversalFlags(command *cobra.Command, options *traversalOptions, withDepth bool) {
	flagSet := command.Flags()
	registerBooleanFlag(flagSet, &options.showHidden, hiddenFlagName, false, hiddenFlagDescription)
	if withDepth {
		registerDepthFlag(flagSet, &options.maxDepth, depthFlagName, depthFlagDescription)
	}
	flagSet.StringArrayVarP(&options.exclusionPatterns, exclusionFlagName, exclusionFlagShorthand, nil, exclusionFlagDescription)
	registerBooleanFlag(flagSet, &options.noDefaultExcludes, noDefaultExcludesFlagName, false, noDefaultExcludesFlagDescription)
	registerBooleanFlag(flagSet, &options.disableGitignore, noGitignoreFlagName, false, disableGitignoreFlagDescription)
	registerBooleanFlag(flagSet, &options.disableIgnoreFile, noIgnoreFlagName, false, disableIgnoreFlagDescription)
	registerBooleanFlag(flagSet, &options.progress, progressFlagName, false, progressFlagDescription)
}

func addTokenFlags(command *cobra.Command, options *tokenOptions) {
	registerBooleanFlag(command.Flags(), &options.enabled, tokensFlagName, false, tokensFlagDescription)
	command.Flags().StringVar(&options.model, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
}

func (app *application) createTreeCommand() *cobra.Command {
	var traversal traversalOptions
	var tokens tokenOptions
	var outputFormat string
	var showSizes, includeSummary, copyEnabled bool

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			settings := app.configuration.Tree
			rootPath := firstArgumentOr(arguments, 0, defaultPath)
			format, formatError := resolveFormat(command, outputFormat, settings.Format)
			if formatError != nil {
				return formatError
			}
			treeConfig, configError := app.resolveTreeConfig(command, traversal, settings.Paths, settings.MaxDepth, rootPath)
			if configError != nil {
				return configError
			}
			tokenSettings := resolveTokens(command, tokens, settings.Tokens)
			renderOptions := treeRenderOptions{
				format:         format,
				text:           output.TextOptions{ShowSizes: resolveBool(command, sizesFlagName, showSizes, settings.Sizes, false)},
				includeSummary: resolveBool(command, summaryFlagName, includeSummary, settings.Summary, false),
			}
			if tokenSettings.enabled {
				counter, model, counterError := app.newCounter(tokenizer.Config{Model: tokenSettings.model})
				if counterError != nil {
					return counterError
				}
				renderOptions.tokenCounter = counter
				renderOptions.tokenModel = model
			}
			copyOutput := resolveBool(command, copyFlagName, copyEnabled, settings.Clipboard, false)
			return app.withClipboard(copyOutput, func(writer io.Writer) error {
				renderer := newTreeRenderer(writer, renderOptions)
				producer := func(streamCtx context.Context, ch chan<- stream.Event) error {
					return stream.StreamTree(streamCtx, stream.TreeOptions{Root: rootPath, Session: session.New(treeConfig)}, ch)
				}
				if streamError := dispatchStream(command.Context(), producer, app.consumer(renderer, traversal.progress)); streamError != nil {
					return streamError
				}
				return renderer.Flush()
			})
		},
	}

	addTraversalFlags(treeCommand, &traversal, true)
	addTokenFlags(treeCommand, &tokens)
	treeCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatText, formatFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &showSizes, sizesFlagName, false, sizesFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &includeSummary, summaryFlagName, false, summaryFlagDescription)
	registerBooleanFlag(treeCommand.Flags(), &copyEnabled, copyFlagName, false, copyFlagDescription)
	return treeCommand
}

func (app *application) createSearchCommand() *cobra.Command {
	var traversal traversalOptions
	var outputFormat string
	var copyEnabled bool

	searchCommand := &cobra.Command{
		Use:     searchUse,
		Aliases: []string{searchAlias},
		Short:   searchShortDescription,
		Long:    searchLongDescription,
		Example: searchUsageExample,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(command *cobra.Command, arguments []string) error {
			settings := app.configuration.Search
			searchPattern := arguments[0]
			rootPath := firstArgumentOr(arguments, 1, defaultPath)
			format, formatError := resolveFormat(command, outputFormat, settings.Format)
			if formatError != nil {
				return formatError
			}
			treeConfig, configError := app.resolveTreeConfig(command, traversal, settings.Paths, nil, rootPath)
			if configError != nil {
				return configError
			}
			searchOptions := stream.SearchOptions{
				Root:    rootPath,
				Pattern: searchPattern,
				Session: session.New(treeConfig),
			}
			copyOutput := resolveBool(command, copyFlagName, copyEnabled, settings.Clipboard, false)
			return app.withClipboard(copyOutput, func(writer io.Writer) error {
				renderer := newSearchRenderer(writer, format)
				producer := func(streamCtx context.Context, ch chan<- stream.Event) error {
					return stream.StreamSearch(streamCtx, searchOptions, ch)
				}
				if streamError := dispatchStream(command.Context(), producer, app.consumer(renderer, traversal.progress)); streamError != nil {
					return streamError
				}
				return renderer.Flush()
			})
		},
	}

	addTraversalFlags(searchCommand, &traversal, false)
	searchCommand.Flags().StringVar(&outputFormat, formatFlagName, types.FormatText, formatFlagDescription)
	registerBooleanFlag(searchCommand.Flags(), &copyEnabled, copyFlagName, false, copyFlagDescription)
	return searchCommand
}

func (app *application) createExportCommand() *cobra.Command {
	var traversal traversalOptions
	var tokens tokenOptions
	var destination string
	var showSizes bool

	exportCommand := &cobra.Command{
		Use:     exportUse,
		Aliases: []string{exportAlias},
		Short:   exportShortDescription,
		Long:    exportLongDescription,
		Example: exportUsageExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(command *cobra.Command, arguments []string) error {
			treeSettings := app.configuration.Tree
			exportSettings := app.configuration.Export
			rootPath := firstArgumentOr(arguments, 0, defaultPath)
			treeConfig, configError := app.resolveTreeConfig(command, traversal, treeSettings.Paths, treeSettings.MaxDepth, rootPath)
			if configError != nil {
				return configError
			}

			current := session.New(treeConfig)
			if selectError := current.SelectFolder(rootPath); selectError != nil {
				return selectError
			}
			producer := func(streamCtx context.Context, ch chan<- stream.Event) error {
				return stream.StreamTree(streamCtx, stream.TreeOptions{Root: current.Root(), Session: current}, ch)
			}
			logger := func(event stream.Event) error {
				app.logEvent(event, traversal.progress)
				return nil
			}
			if streamError := dispatchStream(command.Context(), producer, logger); streamError != nil {
				return streamError
			}

			exportOptions := session.ExportOptions{
				Destination: destination,
				Text:        output.TextOptions{ShowSizes: resolveBool(command, sizesFlagName, showSizes, exportSettings.Sizes, false)},
				GeneratedAt: app.now(),
			}
			tokenSettings := resolveTokens(command, tokens, exportSettings.Tokens)
			if tokenSettings.enabled {
				summary, summaryError := app.summaryWithTokens(current, exportOptions.Text, tokenSettings)
				if summaryError != nil {
					return summaryError
				}
				exportOptions.Summary = summary
			}
			writtenPath, exportError := current.Export(exportOptions)
			if exportError != nil {
				return exportError
			}
			fmt.Fprintf(app.stdout, exportCompletedFormat, writtenPath)
			return nil
		},
	}

	addTraversalFlags(exportCommand, &traversal, true)
	addTokenFlags(exportCommand, &tokens)
	exportCommand.Flags().StringVarP(&destination, outputFlagName, outputFlagShorthand, "", outputFlagDescription)
	registerBooleanFlag(exportCommand.Flags(), &showSizes, sizesFlagName, false, sizesFlagDescription)
	return exportCommand
}

func (app *application) createInitCommand() *cobra.Command {
	var writeGlobal, force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if writeGlobal {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(app.stdout, initCompletedFormat, writtenPath)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &writeGlobal, globalFlagName, false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// resolveTreeConfig merges flags over configuration over defaults and loads
// the ignore rules below rootPath.
func (app *application) resolveTreeConfig(command *cobra.Command, traversal traversalOptions, paths config.PathConfiguration, configuredDepth *int, rootPath string) (types.TreeConfig, error) {
	treeConfig := types.TreeConfig{
		ShowHidden: resolveBool(command, hiddenFlagName, traversal.showHidden, paths.ShowHidden, false),
		MaxDepth:   configuredDepth,
	}
	if flag := command.Flags().Lookup(depthFlagName); flag != nil && flag.Changed {
		treeConfig.MaxDepth = traversal.maxDepth
	}

	var exclusions []string
	if !traversal.noDefaultExcludes {
		exclusions = append(exclusions, types.DefaultExcludePatterns...)
	}
	exclusions = append(exclusions, paths.Exclude...)
	exclusions = append(exclusions, utils.SplitPatternList(traversal.exclusionPatterns)...)
	treeConfig.ExcludePatterns = utils.DeduplicatePatterns(exclusions)
	if _, patternError := pattern.NewExclusionSet(treeConfig.ExcludePatterns, nil); patternError != nil {
		return types.TreeConfig{}, fmt.Errorf(invalidPatternListFormat, patternError)
	}

	sources := config.IgnoreSources{
		UseGitignore:  !resolveBool(command, noGitignoreFlagName, traversal.disableGitignore, invertBool(paths.UseGitignore), false),
		UseIgnoreFile: !resolveBool(command, noIgnoreFlagName, traversal.disableIgnoreFile, invertBool(paths.UseIgnoreFile), false),
	}
	if info, statError := os.Stat(rootPath); statError == nil && info.IsDir() {
		rules, loadError := config.LoadRecursiveIgnorePatterns(rootPath, sources)
		if loadError != nil {
			return types.TreeConfig{}, fmt.Errorf(loadIgnoreRulesFormat, rootPath, loadError)
		}
		treeConfig.IgnoreRules = rules
	}
	return treeConfig, nil
}

func (app *application) summaryWithTokens(current *session.Session, textOptions output.TextOptions, tokenSettings tokenOptions) (*types.OutputSummary, error) {
	result, ok := current.LastTree()
	if !ok {
		return nil, session.ErrNoTree
	}
	counter, model, counterError := app.newCounter(tokenizer.Config{Model: tokenSettings.model})
	if counterError != nil {
		return nil, counterError
	}
	counted, countError := tokenizer.CountText(counter, output.RenderTreeText(result, textOptions), model)
	if countError != nil {
		return nil, countError
	}
	summary := output.BuildSummary(result)
	summary.TotalTokens = counted.Tokens
	summary.Model = counted.Model
	return &summary, nil
}

// withClipboard runs render against stdout, and also copies everything written
// to the clipboard when enabled.
func (app *application) withClipboard(enabled bool, render func(io.Writer) error) error {
	if !enabled {
		return render(app.stdout)
	}
	var captured bytes.Buffer
	if renderError := render(io.MultiWriter(app.stdout, &captured)); renderError != nil {
		return renderError
	}
	if copyError := app.copier.Copy(captured.String()); copyError != nil {
		app.logger.Warn(clipboardFailedMessage, zap.Error(copyError))
		return nil
	}
	app.logger.Debug(clipboardCopiedMessage, zap.Int(logFieldBytes, captured.Len()))
	return nil
}

func (app *application) consumer(renderer streamRenderer, progressVisible bool) func(stream.Event) error {
	return func(event stream.Event) error {
		app.logEvent(event, progressVisible)
		return renderer.Handle(event)
	}
}

func (app *application) logEvent(event stream.Event, progressVisible bool) {
	switch event.Kind {
	case stream.EventKindWarning:
		if event.Message != nil {
			app.logger.Warn(warningLogMessage, zap.String(logFieldPath, event.Path), zap.String(logFieldMessage, event.Message.Message))
		}
	case stream.EventKindProgress:
		if event.Progress == nil {
			return
		}
		fields := []zap.Field{
			zap.String(logFieldDirectory, event.Progress.Directory),
			zap.Int(logFieldEntries, event.Progress.Entries),
			zap.Int(logFieldScanned, event.Progress.DirectoriesScanned),
		}
		if progressVisible {
			app.logger.Info(progressLogMessage, fields...)
		} else {
			app.logger.Debug(progressLogMessage, fields...)
		}
	}
}

func dispatchStream(
	ctx context.Context,
	produce func(context.Context, chan<- stream.Event) error,
	consume func(stream.Event) error,
) error {
	if ctx == nil {
		ctx = context.Background()
	}
	group, streamCtx := errgroup.WithContext(ctx)
	events := make(chan stream.Event)

	group.Go(func() error {
		defer close(events)
		return produce(streamCtx, events)
	})

	group.Go(func() error {
		for {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := consume(event); err != nil {
					return err
				}
			}
		}
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func resolveFormat(command *cobra.Command, flagValue string, configured string) (string, error) {
	format := types.FormatText
	if configured != "" {
		format = configured
	}
	if flag := command.Flags().Lookup(formatFlagName); flag != nil && flag.Changed {
		format = flagValue
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if !output.IsSupportedFormat(format) {
		return "", fmt.Errorf(invalidFormatMessage, format)
	}
	return format, nil
}

func resolveTokens(command *cobra.Command, flags tokenOptions, configured config.TokenConfiguration) tokenOptions {
	resolved := tokenOptions{
		enabled: resolveBool(command, tokensFlagName, flags.enabled, configured.Enabled, false),
		model:   tokenizer.DefaultModel,
	}
	if configured.Model != "" {
		resolved.model = configured.Model
	}
	if flag := command.Flags().Lookup(modelFlagName); flag != nil && flag.Changed {
		resolved.model = flags.model
	}
	return resolved
}

// resolveBool prefers an explicitly set flag, then the configured value, then fallback.
func resolveBool(command *cobra.Command, flagName string, flagValue bool, configured *bool, fallback bool) bool {
	if flag := command.Flags().Lookup(flagName); flag != nil && flag.Changed {
		return flagValue
	}
	if configured != nil {
		return *configured
	}
	return fallback
}

func invertBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	inverted := !*value
	return &inverted
}

func firstArgumentOr(arguments []string, index int, fallback string) string {
	if index < len(arguments) && strings.TrimSpace(arguments[index]) != "" {
		return filepath.Clean(arguments[index])
	}
	return fallback
}
