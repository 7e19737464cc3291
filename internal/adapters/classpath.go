package adapters

import (
	"path"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"osgi-mock/internal/ports"
	"osgi-mock/internal/shared"
)

type ClasspathAdapter struct{}

func NewClasspathAdapter() ClasspathAdapter {
	return ClasspathAdapter{}
}

func (a ClasspathAdapter) Open(entries []string) (ports.ClassLoaderPort, error) {
	if len(entries) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("classpath is empty")
	}
	loader := NewClassLoader(nil)
	for _, entry := range shared.NormalizeNames(entries) {
		if err := loader.AddEntry(entry); err != nil {
			_ = loader.Close()
			return nil, err
		}
	}
	if len(loader.Locations()) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("classpath is empty")
	}
	return loader, nil
}

func (a ClasspathAdapter) FindDescriptors(loader ports.ClassLoaderPort) ([]string, error) {
	if loader == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("class loader is required")
	}
	resources, err := loader.ListResources(MetadataRoot)
	if err != nil {
		return nil, err
	}
	var classes []string
	for _, resource := range resources {
		class := shared.ClassNameFromDescriptor(path.Base(resource))
		// serviceComponents.xml is the aggregate index some build tools emit.
		if class == "" || class == "serviceComponents" {
			continue
		}
		classes = append(classes, class)
	}
	log.Debug().Int("descriptors", len(classes)).Msg("classpath scanned")
	return classes, nil
}

var _ ports.ClasspathPort = ClasspathAdapter{}
