// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant configuration discovery, hierarchical merging,
// environment variable support and validation.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gospell/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLISettings contains configuration from CLI flags.
	// These take highest precedence.
	CLISettings *config.Settings
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLISettings)
//  2. Environment variables (GOSPELL_*)
//  3. Project config (opts.ExplicitPath, or .gospell.yaml upward search)
//  4. User config ($XDG_CONFIG_HOME/gospell/config.yaml)
//  5. System config (/etc/gospell/config.yaml)
//  6. Defaults
//
// Word lists merge additively across layers; see merge. A project config
// with use_global: false drops the user and system layers.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{
		Paths: &ConfigPaths{},
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	settings := config.DefaultSettings()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	result.Paths = paths

	if opts.ExplicitPath != "" {
		result.Paths.Explicit = opts.ExplicitPath
	}

	// The project layer is read first so its use_global switch can exclude
	// the user and system layers, then merged in precedence order.

	var projectSettings *config.Settings
	projectPath := ""
	switch {
	case opts.ExplicitPath != "":
		projectPath = opts.ExplicitPath
	case !opts.IgnoreProjectConfig && paths.Project != "":
		projectPath = paths.Project
	}
	if projectPath != "" {
		loaded, err := config.LoadSettings(projectPath)
		if err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		projectSettings = &loaded
	}

	useGlobal := projectSettings == nil || projectSettings.UseGlobalConfig()

	if useGlobal && !opts.IgnoreSystemConfig && paths.System != "" {
		systemSettings, err := config.LoadSettings(paths.System)
		if err != nil {
			return nil, fmt.Errorf("load system config: %w", err)
		}
		settings = merge(settings, systemSettings)
		result.LoadedFrom = append(result.LoadedFrom, paths.System)
	}

	if useGlobal && !opts.IgnoreUserConfig && paths.User != "" {
		userSettings, err := config.LoadSettings(paths.User)
		if err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		settings = merge(settings, userSettings)
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if projectSettings != nil {
		settings = merge(settings, *projectSettings)
		result.LoadedFrom = append(result.LoadedFrom, projectPath)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(&settings); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLISettings != nil {
		settings = merge(settings, *opts.CLISettings)
	}

	validation := Validate(settings)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = config.New(settings, persistencePath(result.Paths))
	return result, nil
}

// persistencePath picks the file `gospell add` style mutations write back
// to: the explicit path when given, else the project config. User and system
// configs are never mutated.
func persistencePath(paths *ConfigPaths) string {
	if paths.Explicit != "" {
		return paths.Explicit
	}
	return paths.Project
}
