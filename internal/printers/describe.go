package printers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/duration"
	"sigs.k8s.io/yaml"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

// describePrinter prints a single Run or Build for humans: a metadata header
// followed by the spec as YAML.
type describePrinter struct {
	options PrinterOptions
}

// PrintObj prints a single object in describe format.
func (p *describePrinter) PrintObj(obj runtime.Object, writer io.Writer) error {
	switch o := obj.(type) {
	case *v1alpha1.Run:
		phase := o.Phase()
		if phase == "" {
			phase = noneValue
		}
		return p.describe(writer, "Run", o.ObjectMeta, phase, &o.Spec)
	case *v1alpha1.Build:
		return p.describe(writer, "Build", o.ObjectMeta, "", &o.Spec)
	default:
		return fmt.Errorf("describe output is not supported for %T", obj)
	}
}

func (p *describePrinter) describe(writer io.Writer, kind string, meta metav1.ObjectMeta, phase string, spec interface{}) error {
	specYAML, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to render %s spec: %w", kind, err)
	}

	var b strings.Builder
	field := func(name, value string) {
		fmt.Fprintf(&b, "%-12s%s\n", name+":", value)
	}

	field("Name", meta.Name)
	field("Namespace", meta.Namespace)
	field("Kind", kind)
	if phase != "" {
		field("Phase", phase)
	}
	if meta.CreationTimestamp.IsZero() {
		field("Created", unknownValue)
	} else {
		age := duration.HumanDuration(p.options.now().Sub(meta.CreationTimestamp.Time))
		field("Created", fmt.Sprintf("%s (%s ago)", formatCreated(meta.CreationTimestamp), age))
	}
	labels := formatLabels(meta.Labels)
	field("Labels", labels[0])
	for _, l := range labels[1:] {
		field("", l)
	}
	b.WriteString("Spec:\n")
	for _, line := range strings.Split(strings.TrimRight(string(specYAML), "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}

	_, err = io.WriteString(writer, b.String())
	return err
}

func formatLabels(labels map[string]string) []string {
	if len(labels) == 0 {
		return []string{noneValue}
	}
	out := make([]string, 0, len(labels))
	for k, v := range labels {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
