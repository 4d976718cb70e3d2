package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/config"
	"github.com/alexisbeaulieu97/atomic/internal/logger"
	"github.com/alexisbeaulieu97/atomic/internal/theme"
)

// appContext bundles the dependencies shared by every subcommand.
type appContext struct {
	settings     config.Settings
	settingsPath string
	log          *logger.Logger
	registry     *catalog.Registry
	cell         *theme.Cell
}

func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	settingsPath := flags.settingsPath
	if settingsPath == "" {
		settingsPath = config.SettingsPath()
	}

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, newCommandError("start", "loading settings", err, fmt.Sprintf("Fix or remove %s.", settingsPath))
	}

	log, err := buildLogger(cmd, flags, settings)
	if err != nil {
		return nil, newCommandError("start", "configuring logging", err, "Use one of trace, debug, info, warn, error and json or console.")
	}
	log = log.With("settings", settingsPath)

	reg := catalog.DefaultRegistry()
	if flags.configPath != "" {
		doc, err := config.ParseDocument(flags.configPath)
		if err != nil {
			return nil, newCommandError("load components", flags.configPath, err, "Run 'atomic schema' for the document format.")
		}
		added, err := config.Register(reg, doc)
		if err != nil {
			return nil, newCommandError("register components", flags.configPath, err, "Rename components that clash with builtins.")
		}
		log.With("path", flags.configPath).With("components", added).Debug("registered document components")
	}

	log.WithFields(map[string]any{
		"theme":       settings.Theme,
		"max_visible": settings.MaxVisiblePages,
		"components":  reg.Len(),
	}).Debug("application context ready")

	return &appContext{
		settings:     settings,
		settingsPath: settingsPath,
		log:          log,
		registry:     reg,
		cell:         theme.NewCell(settings.ThemeMode()),
	}, nil
}

func buildLogger(cmd *cobra.Command, flags *rootFlags, settings config.Settings) (*logger.Logger, error) {
	level := settings.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}

	formatName := settings.LogFormat
	if flags.logFormat != "" {
		formatName = flags.logFormat
	}
	format, err := logger.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return logger.New(logger.Options{Level: level, Format: format, Writer: cmd.ErrOrStderr()})
}
