package printers

import (
	"io"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

// yamlPrinter prints objects as YAML.
type yamlPrinter struct{}

// PrintObj prints an object as YAML.
func (p *yamlPrinter) PrintObj(obj runtime.Object, writer io.Writer) error {
	data, err := yaml.Marshal(obj)
	if err != nil {
		return err
	}
	_, err = writer.Write(data)
	return err
}
