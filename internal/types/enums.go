package types

// ValueKind tags which member of a PropertyValue is set.
type ValueKind string

const (
	ValueKindString  ValueKind = "String"
	ValueKindInteger ValueKind = "Integer"
)

type ReportFormat string

const (
	ReportFormatText ReportFormat = "text"
	ReportFormatYAML ReportFormat = "yaml"
	ReportFormatJSON ReportFormat = "json"
)
