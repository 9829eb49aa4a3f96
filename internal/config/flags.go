package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagSeed        = flag.Uint64("seed", 0, "Random seed (0 keeps the configured seed)")
	flagIterations  = flag.Int("iterations", 0, "Iteration budget")
	flagDepth       = flag.Int("depth", 0, "Partition tree depth")
	flagOut         = flag.String("out", "", "Export directory")
	flagMetricsAddr = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address")
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
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagIterations > 0 {
		cfg.Terrain.IterationBudget = *flagIterations
	}
	if *flagDepth > 0 {
		cfg.Terrain.Depth = *flagDepth
	}
	if *flagOut != "" {
		cfg.Export.Dir = *flagOut
	}
	if *flagMetricsAddr != "" {
		cfg.Metrics.Addr = *flagMetricsAddr
	}
}
