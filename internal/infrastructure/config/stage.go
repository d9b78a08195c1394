package config

// LayoutConfig is the root config for layout YAML files
type LayoutConfig struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Platforms []RectConfig `yaml:"platforms"`
}

type RectConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}
