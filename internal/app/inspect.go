package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"osgi-mock/internal/core"
	"osgi-mock/internal/ports"
	"osgi-mock/internal/shared"
	"osgi-mock/internal/types"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	loader, err := s.openClasspath(req.Classpath)
	if err != nil {
		return InspectResult{}, err
	}
	defer loader.Close()

	classes := shared.NormalizeNames(req.Classes)
	if len(classes) == 0 {
		classes, err = s.Classpath.FindDescriptors(loader)
		if err != nil {
			return InspectResult{}, err
		}
	}

	config, err := s.loadConfiguration(req.ConfigLayers)
	if err != nil {
		return InspectResult{}, err
	}

	reader := core.NewComponentReader(s.Metadata)
	components := make([]types.ComponentMetadata, 0, len(classes))
	for _, name := range classes {
		meta, err := reader.Read(ctx, loader.LoadClass(name))
		if err != nil {
			return InspectResult{}, err
		}
		if config != nil {
			for prop, value := range config.Properties(name) {
				meta.Properties[prop] = value
			}
		}
		components = append(components, meta)
	}
	return InspectResult{Components: components}, nil
}

func (s Service) openClasspath(entries []string) (ports.ClassLoaderPort, error) {
	cleaned := shared.NormalizeNames(entries)
	if len(cleaned) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("classpath is required")
	}
	return s.Classpath.Open(cleaned)
}

func (s Service) loadConfiguration(layers []string) (ports.ConfigurationPort, error) {
	if len(layers) == 0 || s.Configuration == nil {
		return nil, nil
	}
	config := s.Configuration()
	for _, layer := range shared.NormalizeNames(layers) {
		if err := config.LoadLayer(layer); err != nil {
			return nil, err
		}
	}
	return config, nil
}
