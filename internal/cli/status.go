package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/execdat/execd/internal/printers"
)

var (
	statusFormats = []string{printers.FormatDescribe, printers.FormatYAML, printers.FormatJSON}
	listFormats   = []string{printers.FormatTable, printers.FormatYAML, printers.FormatJSON, printers.FormatName}
)

func newStatusCommand(a *app) *cobra.Command {
	var kind, output string

	cmd := &cobra.Command{
		Use:   "status <name>",
		Short: "Show a Run or Build",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, statusFormats); err != nil {
				return err
			}
			if kind != runKind.command && kind != buildKind.command {
				return fmt.Errorf("unknown kind %q (want %q or %q)", kind, runKind.command, buildKind.command)
			}

			ops, _, err := a.resourceOperations()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			var obj runtime.Object
			if kind == runKind.command {
				obj, err = ops.GetRun(ctx, args[0])
			} else {
				obj, err = ops.GetBuild(ctx, args[0])
			}
			if err != nil {
				return err
			}
			return a.print(cmd, output, printers.PrinterOptions{}, obj)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", runKind.command, "Resource kind: run or build")
	cmd.Flags().StringVarP(&output, "output", "o", printers.FormatDescribe, "Output format: describe, yaml or json")

	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var (
		output    string
		noHeaders bool
	)

	cmd := &cobra.Command{
		Use:       "list [runs|builds]",
		Short:     "List Runs or Builds in the namespace",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"runs", "builds"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, listFormats); err != nil {
				return err
			}

			ops, _, err := a.resourceOperations()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			var obj runtime.Object
			if len(args) == 1 && args[0] == "builds" {
				obj, err = ops.ListBuilds(ctx)
			} else {
				obj, err = ops.ListRuns(ctx)
			}
			if err != nil {
				return err
			}
			return a.print(cmd, output, printers.PrinterOptions{NoHeaders: noHeaders}, obj)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", printers.FormatTable, "Output format: table, yaml, json or name")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit the header row of the table output")

	return cmd
}

func (a *app) print(cmd *cobra.Command, format string, opts printers.PrinterOptions, obj runtime.Object) error {
	opts.Namespace = a.cfg.Namespace
	p, err := printers.NewPrinter(format, opts)
	if err != nil {
		return err
	}
	return p.PrintObj(obj, out(cmd))
}

func checkFormat(format string, allowed []string) error {
	for _, f := range allowed {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q (want one of %v)", format, allowed)
}
