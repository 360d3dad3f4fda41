package app

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManifestsPath string // directory of component schema .hcl manifests
	ListenAddr    string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8094"
	}
	return &cfg, nil
}
