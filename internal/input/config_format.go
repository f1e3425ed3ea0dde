package input

// Actionspec names an action in the configuration, e.g. "scroll-top".
type Actionspec string

// InputConfig is the key mapping section of the configuration file.
type InputConfig struct {
	Viewer map[Keyspec]Actionspec `yaml:"viewer"`
	Prompt map[Keyspec]Actionspec `yaml:"prompt"`
}
