package types

// ComponentReport is the serialisable view of ComponentMetadata.
type ComponentReport struct {
	Class      string           `yaml:"class" json:"class"`
	Descriptor string           `yaml:"descriptor,omitempty" json:"descriptor,omitempty"`
	Found      bool             `yaml:"found" json:"found"`
	Interfaces []string         `yaml:"interfaces" json:"interfaces"`
	Properties []PropertyReport `yaml:"properties" json:"properties"`
}

type PropertyReport struct {
	Name  string    `yaml:"name" json:"name"`
	Type  ValueKind `yaml:"type" json:"type"`
	Value any       `yaml:"value" json:"value"`
}

// NewComponentReport flattens metadata into sorted, serialisable form.
func NewComponentReport(meta ComponentMetadata) ComponentReport {
	report := ComponentReport{
		Class:      meta.Class,
		Descriptor: meta.DescriptorPath,
		Found:      meta.Found,
		Interfaces: meta.Interfaces.Sorted(),
		Properties: []PropertyReport{},
	}
	for _, name := range meta.Properties.Names() {
		value := meta.Properties[name]
		report.Properties = append(report.Properties, PropertyReport{
			Name:  name,
			Type:  value.Kind,
			Value: value.Any(),
		})
	}
	return report
}
