package printers

import (
	"fmt"
	"io"
	"strings"

	"k8s.io/apimachinery/pkg/api/meta"
	"k8s.io/apimachinery/pkg/runtime"
)

// namePrinter prints resource/name lines, one per object.
type namePrinter struct{}

// PrintObj prints an object, or every item of a list, as name-only output.
func (p *namePrinter) PrintObj(obj runtime.Object, writer io.Writer) error {
	if meta.IsListType(obj) {
		items, err := meta.ExtractList(obj)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := p.PrintObj(item, writer); err != nil {
				return err
			}
		}
		return nil
	}

	objMeta, err := meta.Accessor(obj)
	if err != nil {
		return fmt.Errorf("object does not implement metav1.Object: %w", err)
	}

	gvk := obj.GetObjectKind().GroupVersionKind()
	resource := strings.ToLower(gvk.Kind)
	if gvk.Group != "" {
		resource += "." + gvk.Group
	}

	_, err = fmt.Fprintf(writer, "%s/%s\n", resource, objMeta.GetName())
	return err
}
