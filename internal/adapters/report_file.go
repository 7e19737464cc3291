package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"osgi-mock/internal/ports"
	"osgi-mock/internal/types"
)

// ReportFileAdapter writes component reports to Path, or to Out when Path
// is empty.
type ReportFileAdapter struct {
	Path string
	Out  io.Writer
}

func NewReportFileAdapter(path string, out io.Writer) ReportFileAdapter {
	return ReportFileAdapter{Path: path, Out: out}
}

func (a ReportFileAdapter) WriteComponents(reports []types.ComponentReport, format types.ReportFormat) error {
	var content []byte
	var err error
	switch format {
	case types.ReportFormatText, "":
		content = []byte(renderText(reports))
	case types.ReportFormatYAML:
		content, err = yaml.Marshal(map[string]any{"components": reports})
	case types.ReportFormatJSON:
		content, err = json.MarshalIndent(map[string]any{"components": reports}, "", "  ")
		content = append(content, '\n')
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported report format: " + string(format))
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode report").
			WithCause(err)
	}
	return a.write(content)
}

func (a ReportFileAdapter) write(content []byte) error {
	if a.Path == "" {
		out := a.Out
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(content); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write report").
				WithCause(err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path, content, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report").
			WithCause(err)
	}
	return nil
}

func renderText(reports []types.ComponentReport) string {
	var b strings.Builder
	for _, report := range reports {
		if !report.Found {
			fmt.Fprintf(&b, "%s (no descriptor)\n", report.Class)
			continue
		}
		fmt.Fprintf(&b, "%s (%s)\n", report.Class, report.Descriptor)
		if len(report.Interfaces) > 0 {
			b.WriteString("  interfaces:\n")
			for _, iface := range report.Interfaces {
				fmt.Fprintf(&b, "    - %s\n", iface)
			}
		}
		if len(report.Properties) > 0 {
			b.WriteString("  properties:\n")
			for _, prop := range report.Properties {
				fmt.Fprintf(&b, "    %s = %v (%s)\n", prop.Name, prop.Value, prop.Type)
			}
		}
	}
	return b.String()
}

var _ ports.ReportPort = ReportFileAdapter{}
