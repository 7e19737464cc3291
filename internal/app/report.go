package app

import (
	"context"
	"io"

	"osgi-mock/internal/types"
)

type ReportRequest struct {
	Components []types.ComponentMetadata
	Format     types.ReportFormat
	// Output is a file path; Out receives the report when it is empty.
	Output string
	Out    io.Writer
}

// Report renders inspected components through the configured report port.
func (s Service) Report(_ context.Context, req ReportRequest) error {
	reports := make([]types.ComponentReport, 0, len(req.Components))
	for _, component := range req.Components {
		reports = append(reports, types.NewComponentReport(component))
	}
	return s.Reports(req.Output, req.Out).WriteComponents(reports, req.Format)
}
