package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	k8sschema "k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/execdat/execd/internal/api/v1alpha1"
	"github.com/execdat/execd/internal/k8s"
	"github.com/execdat/execd/internal/logging"
	"github.com/execdat/execd/internal/spec"
)

// resourceKind ties a command to the resource it submits.
type resourceKind struct {
	command    string
	kind       string
	gvr        k8sschema.GroupVersionResource
	namePrefix string
	// load parses the file and builds the unlabelled envelope
	load func(loader spec.Loader, path, namespace, name, generateName string) (*unstructured.Unstructured, *v1alpha1.SourceCode, error)
}

var runKind = resourceKind{
	command:    "run",
	kind:       v1alpha1.RunGroupVersionKind.Kind,
	gvr:        v1alpha1.RunGroupVersionResource,
	namePrefix: k8s.RunNamePrefix,
	load: func(loader spec.Loader, path, namespace, name, generateName string) (*unstructured.Unstructured, *v1alpha1.SourceCode, error) {
		runSpec, err := loader.LoadRun(path)
		if err != nil {
			return nil, nil, err
		}
		obj, err := k8s.NewRunObject(namespace, name, generateName, runSpec)
		return obj, &runSpec.Build.SourceCode, err
	},
}

var buildKind = resourceKind{
	command:    "build",
	kind:       v1alpha1.BuildGroupVersionKind.Kind,
	gvr:        v1alpha1.BuildGroupVersionResource,
	namePrefix: k8s.BuildNamePrefix,
	load: func(loader spec.Loader, path, namespace, name, generateName string) (*unstructured.Unstructured, *v1alpha1.SourceCode, error) {
		buildSpec, err := loader.LoadBuild(path)
		if err != nil {
			return nil, nil, err
		}
		obj, err := k8s.NewBuildObject(namespace, name, generateName, buildSpec)
		return obj, &buildSpec.SourceCode, err
	},
}

type submitOptions struct {
	name            string
	strategy        string
	strategySet     bool
	skipSchemaCheck bool
	strictRevision  bool
}

func newSubmitCommand(a *app, rk resourceKind) *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   rk.command + " <file>",
		Short: fmt.Sprintf("Submit a %s described by a YAML file", rk.kind),
		Long: fmt.Sprintf(`Submit a %[1]s described by a YAML file.

With --strategy generate (the default) the cluster picks a name starting with
%[2]q. With --strategy apply the %[1]s is written with server-side apply under
the name given by --name, so submitting the same file twice updates one %[1]s.
Without --name, apply picks a random name and refuses to overwrite.

The accepted name is printed on stdout.`, rk.kind, rk.namePrefix),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.strategySet = cmd.Flags().Changed("strategy")
			return a.submit(cmd, rk, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "", "Explicit resource name (implies --strategy apply)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", string(k8s.StrategyGenerateName), "Naming strategy: generate or apply")
	cmd.Flags().BoolVar(&opts.skipSchemaCheck, "skip-schema-check", false, "Do not wait for the resource type to be established")
	cmd.Flags().BoolVar(&opts.strictRevision, "strict-revision", false, "Reject sources that set both branch and commit")

	return cmd
}

// identity resolves the naming flags into the envelope identity and the
// matching submit options.
func (o *submitOptions) identity(prefix string) (name, generateName string, submit k8s.SubmitOptions, err error) {
	strategy, err := k8s.ParseStrategy(o.strategy)
	if err != nil {
		return "", "", submit, err
	}

	if o.name != "" {
		if o.strategySet && strategy == k8s.StrategyGenerateName {
			return "", "", submit, fmt.Errorf("--name cannot be used with --strategy %s", strategy)
		}
		return o.name, "", k8s.SubmitOptions{Strategy: k8s.StrategyApply}, nil
	}

	if strategy == k8s.StrategyGenerateName {
		return "", prefix, k8s.SubmitOptions{Strategy: k8s.StrategyGenerateName}, nil
	}

	name, err = k8s.GenerateName(prefix)
	if err != nil {
		return "", "", submit, err
	}
	return name, "", k8s.SubmitOptions{Strategy: k8s.StrategyApply, Exclusive: true}, nil
}

func (a *app) submit(cmd *cobra.Command, rk resourceKind, path string, opts *submitOptions) error {
	name, generateName, submitOpts, err := opts.identity(rk.namePrefix)
	if err != nil {
		return err
	}

	obj, source, err := rk.load(spec.Loader{StrictRevision: opts.strictRevision}, path, a.cfg.Namespace, name, generateName)
	if err != nil {
		return err
	}
	if source.RevisionConflict() {
		logging.Warn("both branch and commit are set, the controller decides which one is used",
			"file", path, "branch", source.Branch, "commit", source.Commit)
	}

	ops, client, err := a.resourceOperations()
	if err != nil {
		return err
	}

	if !opts.skipSchemaCheck {
		crd := v1alpha1.CRDName(rk.gvr)
		logging.Debug("waiting for resource type", "crd", crd, "timeout", a.cfg.SchemaTimeout)
		if _, err := k8s.NewSchemaWaiter(client, 0).Wait(cmd.Context(), crd, a.cfg.SchemaTimeout); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
	defer cancel()

	logging.Debug("submitting", "kind", rk.kind, "namespace", a.cfg.Namespace, "strategy", submitOpts.Strategy, "exclusive", submitOpts.Exclusive)
	accepted, err := ops.Submit(ctx, rk.gvr, obj, submitOpts)
	if err != nil {
		return err
	}

	logging.Info("submitted", "kind", accepted.Kind, "namespace", accepted.Namespace, "name", accepted.Name, "uid", accepted.UID)
	fmt.Fprintln(out(cmd), accepted.Name)
	return nil
}
