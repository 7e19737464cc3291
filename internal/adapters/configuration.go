package adapters

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"osgi-mock/internal/ports"
	"osgi-mock/internal/types"
)

// ConfigurationAdapter implements ConfigurationPort using layered
// configuration yaml files.  Each call to LoadLayer merges new overrides
// into the internal table; later loads override earlier ones per pid and
// property name.
type ConfigurationAdapter struct {
	// merged holds the flattened override table after all layers.
	merged map[string]types.Properties

	// layers tracks load order for debugging / provenance.
	layers []string
}

// NewConfigurationAdapter returns an empty adapter ready for layer loading.
func NewConfigurationAdapter() *ConfigurationAdapter {
	return &ConfigurationAdapter{
		merged: make(map[string]types.Properties),
	}
}

// LoadLayer reads a configuration file and merges its overrides.
// A layer is applied only when it parses and validates completely.
func (a *ConfigurationAdapter) LoadLayer(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read configuration file: " + path).
			WithCause(err)
	}

	var file types.ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse configuration file: " + path).
			WithCause(err)
	}

	if file.ConfigVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("configuration file missing config_version: " + path)
	}

	layer := make(map[string]types.Properties, len(file.PIDs))
	for pid, values := range file.PIDs {
		normalizedPID := strings.TrimSpace(pid)
		if normalizedPID == "" {
			continue
		}
		props := types.Properties{}
		for name, raw := range values {
			value, err := propertyFromYAML(raw)
			if err != nil {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg("pid '" + normalizedPID + "' property '" + name + "' in " + path + ": " + err.Error())
			}
			props[name] = value
		}
		layer[normalizedPID] = props
	}

	for pid, props := range layer {
		merged, ok := a.merged[pid]
		if !ok {
			merged = types.Properties{}
			a.merged[pid] = merged
		}
		for name, value := range props {
			if _, exists := merged[name]; exists {
				log.Debug().
					Str("pid", pid).
					Str("property", name).
					Str("layer", path).
					Msg("configuration property overridden by later layer")
			}
			merged[name] = value
		}
	}

	a.layers = append(a.layers, path)
	log.Debug().
		Str("path", path).
		Int("pids", len(layer)).
		Int("total", len(a.merged)).
		Msg("configuration layer loaded")

	return nil
}

// Properties returns a copy of the merged overrides for pid; empty when
// no layer mentions it.
func (a *ConfigurationAdapter) Properties(pid string) types.Properties {
	return a.merged[strings.TrimSpace(pid)].Clone()
}

// Layers returns the loaded layer paths in load order.
func (a *ConfigurationAdapter) Layers() []string {
	return append([]string(nil), a.layers...)
}

func propertyFromYAML(raw any) (types.PropertyValue, error) {
	switch value := raw.(type) {
	case string:
		return types.StringValue(value), nil
	case int:
		if value < math.MinInt32 || value > math.MaxInt32 {
			return types.PropertyValue{}, fmt.Errorf("integer %d out of range", value)
		}
		return types.IntegerValue(value), nil
	default:
		return types.PropertyValue{}, fmt.Errorf("unsupported value type %T", raw)
	}
}

var _ ports.ConfigurationPort = (*ConfigurationAdapter)(nil)
