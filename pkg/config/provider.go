package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetDisplay() (*DisplayData, error)
	GetTargets() ([]TargetData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Display DisplayData  `json:"display,omitempty"`
	Targets []TargetData `json:"targets,omitempty"`
	LogFile string       `json:"log_file,omitempty"`
}

// DisplayData holds sexagesimal rendering defaults
type DisplayData struct {
	Precision int    `json:"precision,omitempty"`
	Truncate  bool   `json:"truncate,omitempty"`
	Unit      string `json:"unit,omitempty"`
}

// TargetData holds one named catalog position. The position is kept as
// the raw sexagesimal pair string, for example
// "12 22 54.899 +15 49 20.57".
type TargetData struct {
	Name     string `json:"name"`
	Position string `json:"position"`
}
