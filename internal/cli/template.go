package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/execdat/execd/internal/spec"
)

func newTemplateCommand() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an annotated Run file to start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "-" {
				_, err := out(cmd).Write(spec.Template())
				return err
			}
			if err := spec.WriteTemplate(output, force); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "Template written to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", spec.DefaultTemplatePath, "Destination file, or - for stdout")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the destination if it exists")

	return cmd
}
