package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagBase   = flag.String("base", "", "Output base directory")
	flagFrames = flag.Int("frames", 0, "Number of animation frames to export")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagBase != "" {
		cfg.Output.BasePath = *flagBase
	}
	if *flagFrames > 0 {
		cfg.Export.Frames = *flagFrames
	}
}
