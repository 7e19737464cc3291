package ports

import "osgi-mock/internal/types"

type ReportPort interface {
	WriteComponents(reports []types.ComponentReport, format types.ReportFormat) error
}
