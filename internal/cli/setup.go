package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gospell/internal/configloader"
	"github.com/yaklabco/gospell/internal/logging"
	"github.com/yaklabco/gospell/pkg/checker"
	"github.com/yaklabco/gospell/pkg/config"
	"github.com/yaklabco/gospell/pkg/dictionary"
)

// buildChecker resolves configuration and wires the dictionary manager into
// a ready Checker. cliSettings may be nil when the command adds no settings
// of its own.
func buildChecker(cmd *cobra.Command, cliSettings *config.Settings) (*checker.Checker, *configloader.LoadResult, error) {
	ctx := commandContext(cmd)
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLISettings:  cliSettings,
	})
	if err != nil {
		return nil, nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	manager := dictionary.NewManager(resolveCacheDir(cmd))

	return checker.New(loadResult.Config, manager), loadResult, nil
}

// resolveCacheDir honors --cache-dir, falling back to the user cache dir.
func resolveCacheDir(cmd *cobra.Command) string {
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil || cacheDir == "" {
		return dictionary.DefaultCacheDir()
	}
	return cacheDir
}

// commandContext returns the command's context with the default logger
// attached, so packages below the CLI log through the configured level.
func commandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, logging.Default())
}
