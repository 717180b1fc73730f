package config

import "github.com/vdobler/statvis"

// Default values of the settings which are not widget options.
const (
	DefaultOutputFormat = FormatTable
	DefaultLogLevel     = LevelWarn
)

// widgetDefaults are the statvis defaults.
var widgetDefaults = statvis.DefaultOptions()
