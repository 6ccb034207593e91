package catalog

// profileManifest is the on-disk shape of one profile file
// (<root>/<name>.yaml).
type profileManifest struct {
	Name         string                         `yaml:"name"`
	Requests     []string                       `yaml:"requests"`
	Environment  map[string]string              `yaml:"environment"`
	Applications map[string]applicationManifest `yaml:"applications"`
}

// applicationManifest is one launchable application within a profile.
type applicationManifest struct {
	Label       string            `yaml:"label"`
	Command     []string          `yaml:"command"`
	Requests    []string          `yaml:"requests"`
	Environment map[string]string `yaml:"environment"`
}
