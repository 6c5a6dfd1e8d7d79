package printers

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/duration"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

const (
	unknownValue = "<unknown>"
	noneValue    = "<none>"
)

var (
	runColumns   = []string{"NAME", "PHASE", "CREATED", "AGE", "DESCRIPTION"}
	buildColumns = []string{"NAME", "CREATED", "AGE", "DESCRIPTION"}
)

// tablePrinter prints Runs and Builds as fixed-width columns.
type tablePrinter struct {
	options PrinterOptions
}

// PrintObj prints an object in table format.
func (p *tablePrinter) PrintObj(obj runtime.Object, writer io.Writer) error {
	switch o := obj.(type) {
	case *v1alpha1.RunList:
		if len(o.Items) == 0 {
			return p.printEmpty("runs", writer)
		}
		rows := make([][]string, 0, len(o.Items))
		for i := range o.Items {
			rows = append(rows, p.runRow(&o.Items[i]))
		}
		return p.printRows(runColumns, rows, writer)
	case *v1alpha1.Run:
		return p.printRows(runColumns, [][]string{p.runRow(o)}, writer)
	case *v1alpha1.BuildList:
		if len(o.Items) == 0 {
			return p.printEmpty("builds", writer)
		}
		rows := make([][]string, 0, len(o.Items))
		for i := range o.Items {
			rows = append(rows, p.buildRow(&o.Items[i]))
		}
		return p.printRows(buildColumns, rows, writer)
	case *v1alpha1.Build:
		return p.printRows(buildColumns, [][]string{p.buildRow(o)}, writer)
	default:
		return fmt.Errorf("table output is not supported for %T", obj)
	}
}

func (p *tablePrinter) printEmpty(resource string, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, "No %s found in namespace %q.\n", resource, p.options.Namespace)
	return err
}

func (p *tablePrinter) printRows(columns []string, rows [][]string, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 6, 4, 3, ' ', 0)
	if !p.options.NoHeaders {
		if _, err := fmt.Fprintln(w, strings.Join(columns, "\t")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (p *tablePrinter) runRow(run *v1alpha1.Run) []string {
	phase := run.Phase()
	if phase == "" {
		phase = noneValue
	}
	return []string{
		run.Name,
		phase,
		formatCreated(run.CreationTimestamp),
		p.formatAge(run.CreationTimestamp),
		Truncate(Flatten(run.DisplayDescription()), DescriptionWidth),
	}
}

func (p *tablePrinter) buildRow(build *v1alpha1.Build) []string {
	return []string{
		build.Name,
		formatCreated(build.CreationTimestamp),
		p.formatAge(build.CreationTimestamp),
		Truncate(Flatten(build.Spec.Description), DescriptionWidth),
	}
}

func formatCreated(t metav1.Time) string {
	if t.IsZero() {
		return unknownValue
	}
	return t.UTC().Format(time.RFC3339)
}

func (p *tablePrinter) formatAge(t metav1.Time) string {
	if t.IsZero() {
		return unknownValue
	}
	return duration.HumanDuration(p.options.now().Sub(t.Time))
}
