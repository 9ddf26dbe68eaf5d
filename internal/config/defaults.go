package config

const (
	FormatWAV  = "wav"
	FormatAIFF = "aiff"

	defaultConfigPath   = "~/.config/wavtrim/config.toml"
	projectConfigName   = "wavtrim.toml"
	defaultLengthMS     = 1000
	defaultMinVolume    = 0.004
	defaultOutputFormat = FormatWAV
	defaultWorkers      = 1
	defaultLogLevel     = "info"
	defaultLogFormat    = "auto"
)

// Default returns a Config populated with repository defaults. The window
// length and volume threshold match the values speech-command datasets are
// usually prepared with: one second, 0.004 mean amplitude.
func Default() Config {
	return Config{
		Trim: Trim{
			LengthMS:  defaultLengthMS,
			MinVolume: defaultMinVolume,
		},
		Output: Output{
			Format:  defaultOutputFormat,
			Workers: defaultWorkers,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
