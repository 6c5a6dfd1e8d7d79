package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/client-go/dynamic"

	"github.com/execdat/execd/internal/config"
	"github.com/execdat/execd/internal/k8s"
	"github.com/execdat/execd/internal/logging"
)

// ClientFactory connects to the control plane. It is only called by commands
// that need the cluster, after their local input has been validated.
type ClientFactory func(cfg config.Config) (dynamic.Interface, error)

// DefaultClientFactory builds a dynamic client from kubeconfig or in-cluster config.
func DefaultClientFactory(cfg config.Config) (dynamic.Interface, error) {
	return k8s.GetKubernetesClient(cfg.ClientOptions())
}

type app struct {
	cfg       config.Config
	newClient ClientFactory
}

// NewRootCommand builds the execd command tree. Flags default to the values
// in cfg.
func NewRootCommand(cfg config.Config, newClient ClientFactory) *cobra.Command {
	a := &app{cfg: cfg, newClient: newClient}

	rootCmd := &cobra.Command{
		Use:   "execd",
		Short: "Submit and inspect execd Runs and Builds",
		Long: `execd turns a YAML description of a build and its input/output data into
Run and Build resources on a Kubernetes cluster, and reports their progress.

The cluster is selected like kubectl does: --kubeconfig, then the in-cluster
service account, then $KUBECONFIG, then ~/.kube/config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.InitWithWriter(cmd.ErrOrStderr(), a.cfg.LogLevel)
			return a.cfg.Validate()
		},
	}

	addGlobalFlags(rootCmd.PersistentFlags(), &a.cfg)

	rootCmd.AddCommand(newSubmitCommand(a, runKind))
	rootCmd.AddCommand(newSubmitCommand(a, buildKind))
	rootCmd.AddCommand(newStatusCommand(a))
	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newTemplateCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// addGlobalFlags binds the connection and logging flags to cfg, using its
// current values as defaults.
func addGlobalFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.StringVarP(&cfg.Namespace, "namespace", "n", cfg.Namespace, "Namespace to submit to and read from (env "+config.EnvNamespace+")")
	flags.StringVar(&cfg.Kubeconfig, "kubeconfig", cfg.Kubeconfig, "Path to the kubeconfig file")
	flags.StringVar(&cfg.Context, "context", cfg.Context, "Kubeconfig context to use")
	flags.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Timeout for a single command's requests (env "+config.EnvRequestTimeout+")")
	flags.DurationVar(&cfg.SchemaTimeout, "schema-timeout", cfg.SchemaTimeout, "How long to wait for the resource type to be established (env "+config.EnvSchemaTimeout+")")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error (env "+config.EnvLogLevel+")")
	flags.StringVar(&cfg.FieldManager, "field-manager", cfg.FieldManager, "Field manager name used for server-side apply")
}

// resourceOperations connects to the cluster and scopes operations to the
// configured namespace.
func (a *app) resourceOperations() (*k8s.ResourceOperations, dynamic.Interface, error) {
	client, err := a.newClient(a.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to configure cluster access: %w", err)
	}
	return k8s.NewResourceOperations(client, a.cfg.Namespace, a.cfg.FieldManager), client, nil
}

// Run executes the command tree with args and returns the process exit code.
// Errors are printed to the command's error stream.
func Run(ctx context.Context, cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return ExitCode(err)
	}
	return ExitOK
}

// Execute runs execd with the process arguments and environment.
func Execute() int {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExitError
	}
	return Run(context.Background(), NewRootCommand(cfg, DefaultClientFactory), os.Args[1:])
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
