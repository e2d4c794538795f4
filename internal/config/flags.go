package config

// Overrides carries command-line values that win over the config file.
// Zero values leave the loaded setting alone.
type Overrides struct {
	Debug     bool
	LogFile   string
	Precision *int
}

func (o Overrides) apply(cfg *Config) {
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.Precision != nil {
		cfg.Output.Precision = *o.Precision
	}
}
