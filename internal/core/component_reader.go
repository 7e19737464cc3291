package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"osgi-mock/internal/ports"
	"osgi-mock/internal/types"
)

type ComponentReader struct {
	metadata ports.MetadataPort
}

func NewComponentReader(metadata ports.MetadataPort) ComponentReader {
	return ComponentReader{metadata: metadata}
}

// Read runs all three metadata operations for one class. A class without
// a descriptor yields Found=false with empty interfaces and properties.
func (r ComponentReader) Read(ctx context.Context, class types.Class) (types.ComponentMetadata, error) {
	if r.metadata == nil {
		return types.ComponentMetadata{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("component reader has no metadata source")
	}
	doc, err := r.metadata.Document(class)
	if err != nil {
		return types.ComponentMetadata{}, err
	}
	interfaces, err := r.metadata.ServiceInterfaces(doc)
	if err != nil {
		return types.ComponentMetadata{}, err
	}
	props, err := r.metadata.Properties(doc)
	if err != nil {
		return types.ComponentMetadata{}, err
	}

	meta := types.ComponentMetadata{
		Class:      strings.TrimSpace(class.Name),
		Found:      doc != nil,
		Interfaces: interfaces,
		Properties: props,
	}
	if doc != nil {
		assert.NotEmpty(ctx, doc.Path, "parsed descriptor must carry its resource path")
		meta.DescriptorPath = doc.Path
	}
	log.Ctx(ctx).Debug().
		Str("class", meta.Class).
		Bool("found", meta.Found).
		Int("interfaces", len(interfaces)).
		Int("properties", len(props)).
		Msg("component metadata read")
	return meta, nil
}
