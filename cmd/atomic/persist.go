package main

import (
	"github.com/alexisbeaulieu97/atomic/internal/config"
	"github.com/alexisbeaulieu97/atomic/internal/theme"
)

// saveTheme writes mode into the settings file. Only the theme key changes;
// environment and flag overrides in effect for this run stay out of the file.
func saveTheme(app *appContext, mode theme.Mode) error {
	if err := config.UpdateSettings(app.settingsPath, func(s *config.Settings) {
		s.Theme = string(mode)
	}); err != nil {
		return err
	}
	app.settings.Theme = string(mode)
	app.log.With("theme", string(mode)).Debug("theme persisted")
	return nil
}

// persistTheme subscribes to the theme cell and saves every change. The
// returned function stops persisting.
func persistTheme(app *appContext) func() {
	return app.cell.Subscribe(func(mode theme.Mode) {
		if err := saveTheme(app, mode); err != nil {
			app.log.Error(err, "failed to persist theme")
		}
	})
}
