package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"osgi-mock/internal/app"
)

type listOptions struct {
	Classpath []string
}

func newListCommand() *cobra.Command {
	opts := listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List component classes that ship a descriptor",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Classpath, "classpath", nil, "Classpath entries (directories or jar files)")
	_ = viper.BindPFlag("classpath", cmd.Flags().Lookup("classpath"))
	return cmd
}

func runList(ctx context.Context, cmd *cobra.Command, opts listOptions) error {
	service := newAppService()
	result, err := service.List(ctx, app.ListRequest{
		Classpath: resolveStrings(cmd, opts.Classpath, "classpath", "classpath"),
	})
	if err != nil {
		return err
	}
	for _, name := range result.Classes {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
