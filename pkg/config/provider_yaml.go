package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Display DisplayYAML  `yaml:"display,omitempty"`
		Targets []TargetYAML `yaml:"targets,omitempty"`
		LogFile string       `yaml:"log-file,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Display: DisplayData{
			Precision: 3,
			Truncate:  yamlConfig.Display.Truncate,
			Unit:      yamlConfig.Display.Unit,
		},
		Targets: make([]TargetData, len(yamlConfig.Targets)),
		LogFile: yamlConfig.LogFile,
	}

	// Zero is a usable precision, so only an explicit value overrides
	// the default
	if yamlConfig.Display.Precision != nil {
		config.Display.Precision = *yamlConfig.Display.Precision
	}

	for i, target := range yamlConfig.Targets {
		config.Targets[i] = TargetData{
			Name:     target.Name,
			Position: target.Position,
		}
	}

	y.config = config
	return config, nil
}

// GetDisplay returns display configuration
func (y *YAMLProvider) GetDisplay() (*DisplayData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &y.config.Display, nil
}

// GetTargets returns the target catalog
func (y *YAMLProvider) GetTargets() ([]TargetData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return y.config.Targets, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags for parsing the file format
type DisplayYAML struct {
	Precision *int   `yaml:"precision,omitempty"`
	Truncate  bool   `yaml:"truncate,omitempty"`
	Unit      string `yaml:"unit,omitempty"`
}

type TargetYAML struct {
	Name     string `yaml:"name"`
	Position string `yaml:"position"`
}
