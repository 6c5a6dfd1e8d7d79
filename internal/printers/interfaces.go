// Package printers renders Runs and Builds for the terminal. It provides a
// fixed-width table, a describe view, and kubectl-style yaml, json and name
// output.
package printers

import (
	"fmt"
	"io"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
)

const (
	FormatTable    = "table"
	FormatDescribe = "describe"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatName     = "name"
)

// Printer knows how to print objects.
type Printer interface {
	// PrintObj prints the given object to the writer
	PrintObj(obj runtime.Object, writer io.Writer) error
}

// PrinterOptions contains configuration for printers.
type PrinterOptions struct {
	// Namespace is named in the message printed for an empty list
	Namespace string
	// NoHeaders omits the table header
	NoHeaders bool
	// Now is the reference time for ages. Defaults to time.Now.
	Now func() time.Time
}

func (o PrinterOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// NewPrinter creates a printer for the specified format. An empty format
// selects the table.
func NewPrinter(format string, options PrinterOptions) (Printer, error) {
	switch format {
	case FormatTable, "":
		return &tablePrinter{options: options}, nil
	case FormatDescribe:
		return &describePrinter{options: options}, nil
	case FormatJSON:
		return &jsonPrinter{}, nil
	case FormatYAML:
		return &yamlPrinter{}, nil
	case FormatName:
		return &namePrinter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
