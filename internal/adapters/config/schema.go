package config

// Piffile represents the structure of the piff.yaml configuration file.
// Empty fields keep their defaults.
type Piffile struct {
	Transpile string   `yaml:"transpile"`
	Format    string   `yaml:"format"`
	Debounce  string   `yaml:"debounce"`
	Ignore    []string `yaml:"ignore"`
}

// Environment variables that override piff.yaml.
const (
	EnvTranspile = "PIFF_TRANSPILE"
	EnvFormat    = "PIFF_FORMAT"
	EnvDebounce  = "PIFF_DEBOUNCE"
)
