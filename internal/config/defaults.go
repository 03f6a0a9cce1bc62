package config

const (
	defaultConfigPath    = "~/.config/relname/config.toml"
	defaultStateDir      = "~/.local/share/relname"
	defaultOutputFormat  = "auto"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultLibraryWorker = 4
)

var defaultExtensions = []string{"mkv", "mp4", "avi", "m4v", "ts", "wmv", "webm"}

// Default returns a Config populated with defaults.
func Default() Config {
	return Config{
		Parse: Parse{
			Standardise:   true,
			CoherentTypes: false,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
		},
		Library: Library{
			Extensions: append([]string(nil), defaultExtensions...),
			Workers:    defaultLibraryWorker,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
