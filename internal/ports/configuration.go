package ports

import "osgi-mock/internal/types"

// ConfigurationPort supplies property overrides per component pid.
//
// Layers are merged in load order; for the same pid and property name the
// last-loaded layer wins.
type ConfigurationPort interface {
	LoadLayer(path string) error
	Properties(pid string) types.Properties
}
