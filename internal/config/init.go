package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tyemirov/foldertree/internal/tokenizer"
	"github.com/tyemirov/foldertree/internal/types"
	"github.com/tyemirov/foldertree/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes ./.foldertree.yaml.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes ~/.foldertree/config.yaml.
	InitTargetGlobal InitTarget = "global"

	configurationFilePermissions      = 0o600
	configurationDirectoryPermissions = 0o755

	errorWorkingDirectoryFormat = "determine working directory for configuration: %w"
	errorHomeDirectoryFormat    = "resolve home directory for configuration: %w"
	errorCreateDirectoryFormat  = "create configuration directory %s: %w"
	errorUnsupportedTarget      = "unsupported init target %q"
	errorAlreadyExistsFormat    = "configuration file already exists at %s (use --force to overwrite)"
	errorWriteFormat            = "write configuration to %s: %w"

	configurationTemplateFormat = `# foldertree configuration
# Command line flags override these values.
# Entries whose names contain one of %s
# are always skipped unless --no-default-excludes is given.
tree:
  format: text
  sizes: false
  summary: true
  clipboard: false
  # max_depth: 3
  tokens:
    enabled: false
    model: %s
  paths:
%s
search:
  format: text
  clipboard: false
  paths:
%s
export:
  sizes: false
  tokens:
    enabled: false
    model: %s
`
	pathsSectionTemplate = `    show_hidden: false
    exclude: []
    use_gitignore: true
    use_ignore: true`
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// ConfigurationPath returns the file written for target.
func ConfigurationPath(target InitTarget, workingDirectory string) (string, error) {
	switch target {
	case "", InitTargetLocal:
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf(errorWorkingDirectoryFormat, err)
			}
			workingDirectory = current
		}
		return filepath.Join(workingDirectory, utils.LocalConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf(errorHomeDirectoryFormat, err)
		}
		return filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName), nil
	default:
		return "", fmt.Errorf(errorUnsupportedTarget, target)
	}
}

// DefaultConfigurationTemplate renders the commented YAML written by init.
func DefaultConfigurationTemplate() string {
	return fmt.Sprintf(configurationTemplateFormat,
		strings.Join(types.DefaultExcludePatterns, ", "),
		tokenizer.DefaultModel,
		pathsSectionTemplate,
		pathsSectionTemplate,
		tokenizer.DefaultModel,
	)
}

// InitializeConfiguration writes the default configuration to the requested
// target and returns its path. An existing file is kept unless Force is set.
func InitializeConfiguration(options InitOptions) (string, error) {
	destinationPath, err := ConfigurationPath(options.Target, options.WorkingDirectory)
	if err != nil {
		return "", err
	}
	directory := filepath.Dir(destinationPath)
	if err := os.MkdirAll(directory, configurationDirectoryPermissions); err != nil {
		return "", fmt.Errorf(errorCreateDirectoryFormat, directory, err)
	}

	openFlags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !options.Force {
		openFlags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	file, err := os.OpenFile(destinationPath, openFlags, configurationFilePermissions)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf(errorAlreadyExistsFormat, destinationPath)
		}
		return "", fmt.Errorf(errorWriteFormat, destinationPath, err)
	}
	if _, err := file.WriteString(DefaultConfigurationTemplate()); err != nil {
		_ = file.Close()
		return "", fmt.Errorf(errorWriteFormat, destinationPath, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf(errorWriteFormat, destinationPath, err)
	}
	return destinationPath, nil
}
