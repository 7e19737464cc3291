package app

import (
	"io"

	"osgi-mock/internal/adapters"
	"osgi-mock/internal/ports"
)

type Service struct {
	Classpath     ports.ClasspathPort
	Metadata      ports.MetadataPort
	Configuration func() ports.ConfigurationPort
	Reports       func(path string, out io.Writer) ports.ReportPort
}

func NewService() Service {
	return Service{
		Classpath: adapters.NewClasspathAdapter(),
		Metadata:  adapters.NewMetadataXMLAdapter(),
		Configuration: func() ports.ConfigurationPort {
			return adapters.NewConfigurationAdapter()
		},
		Reports: func(path string, out io.Writer) ports.ReportPort {
			return adapters.NewReportFileAdapter(path, out)
		},
	}
}
