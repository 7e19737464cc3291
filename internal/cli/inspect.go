package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"osgi-mock/internal/app"
	"osgi-mock/internal/types"
)

type inspectOptions struct {
	Classpath    []string
	Classes      []string
	ConfigLayers []string
	Format       string
	Output       string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show provided interfaces and default properties of components",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Classpath, "classpath", nil, "Classpath entries (directories or jar files)")
	cmd.Flags().StringSliceVar(&opts.Classes, "class", nil, "Component classes to inspect (default: all descriptors)")
	cmd.Flags().StringSliceVar(&opts.ConfigLayers, "config-layer", nil, "Configuration override files, applied in order")
	cmd.Flags().StringVar(&opts.Format, "format", string(types.ReportFormatText), "Output format: text, yaml or json")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output file (default: stdout)")
	_ = viper.BindPFlag("classpath", cmd.Flags().Lookup("classpath"))
	_ = viper.BindPFlag("config_layers", cmd.Flags().Lookup("config-layer"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		Classpath:    resolveStrings(cmd, opts.Classpath, "classpath", "classpath"),
		Classes:      opts.Classes,
		ConfigLayers: resolveStrings(cmd, opts.ConfigLayers, "config_layers", "config-layer"),
	})
	if err != nil {
		return err
	}

	return service.Report(ctx, app.ReportRequest{
		Components: result.Components,
		Format:     types.ReportFormat(resolveString(cmd, opts.Format, "format", "format")),
		Output:     resolveString(cmd, opts.Output, "output", "output"),
		Out:        cmd.OutOrStdout(),
	})
}
