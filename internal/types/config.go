package types

// GlobalConfig represents the global configuration file (~/.config/tagrename/config.yml)
type GlobalConfig struct {
	LogLevel string   `yaml:"log_level" mapstructure:"log_level"`
	Formats  []string `yaml:"formats" mapstructure:"formats"` // Extension whitelist, empty means every file
}

// Clone returns a deep copy of the global configuration
func (g *GlobalConfig) Clone() GlobalConfig {
	res := *g
	if len(g.Formats) > 0 {
		res.Formats = make([]string, len(g.Formats))
		copy(res.Formats, g.Formats)
	}
	return res
}
