package types

// ConfigFile is the top-level structure of a configuration layer file.
// It assigns property overrides to components by persistent identifier
// (the component class name).
//
// Multiple layers can be loaded; later layers override earlier ones per
// pid and property name.
type ConfigFile struct {
	// ConfigVersion identifies the file format version.
	ConfigVersion string `yaml:"config_version"`

	// PIDs maps a component pid to its property overrides. Values must be
	// integer or string scalars.
	PIDs map[string]map[string]any `yaml:"pids"`
}
