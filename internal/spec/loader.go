// Package spec reads user-authored Build and Run files from YAML into the
// v1alpha1 model.
package spec

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"

	kjson "sigs.k8s.io/json"
	"sigs.k8s.io/yaml"

	"github.com/execdat/execd/internal/api/v1alpha1"
)

// Loader parses spec files. The zero value is ready to use.
type Loader struct {
	// StrictRevision rejects sources that set both branch and commit.
	StrictRevision bool
}

// LoadRun parses a Run file with the default Loader.
func LoadRun(path string) (*v1alpha1.RunSpec, error) {
	return Loader{}.LoadRun(path)
}

// LoadRun reads the file at path into a RunSpec. Either the whole document is
// accepted or an error is returned; there are no partial results.
func (l Loader) LoadRun(path string) (*v1alpha1.RunSpec, error) {
	var run v1alpha1.RunSpec
	if err := l.load(path, &run); err != nil {
		return nil, err
	}
	if errs := validateRun(&run, l.StrictRevision); len(errs) > 0 {
		return nil, &ParseError{Path: path, Field: errs[0].Field, Err: errs.ToAggregate()}
	}
	return &run, nil
}

// LoadBuild reads the file at path into a BuildSpec.
func (l Loader) LoadBuild(path string) (*v1alpha1.BuildSpec, error) {
	var build v1alpha1.BuildSpec
	if err := l.load(path, &build); err != nil {
		return nil, err
	}
	if errs := validateBuild(&build, l.StrictRevision); len(errs) > 0 {
		return nil, &ParseError{Path: path, Field: errs[0].Field, Err: errs.ToAggregate()}
	}
	return &build, nil
}

func (l Loader) load(path string, into interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ReadError{Path: path, Err: err}
	}
	if err := Decode(data, into); err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return parseErr
		}
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// Decode converts a YAML document into the given spec value. Legacy keys are
// migrated before decoding and unknown keys are ignored. Required fields are
// not checked here.
func Decode(data []byte, into interface{}) error {
	raw, err := yaml.YAMLToJSON(data)
	if err != nil {
		return &ParseError{Err: fmt.Errorf("invalid YAML: %w", err)}
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ParseError{Err: fmt.Errorf("document must be a mapping: %w", err)}
	}
	if doc == nil {
		return &ParseError{Err: errors.New("document is empty")}
	}

	migrate(doc)

	normalized, err := json.Marshal(doc)
	if err != nil {
		return &ParseError{Err: err}
	}
	// Wire keys match exactly; BaseImage is an unknown key, not baseimage.
	if err := kjson.UnmarshalCaseSensitivePreserveInts(normalized, into); err != nil {
		if typeErr := typeError(normalized, into); typeErr != nil {
			return &ParseError{
				Field: typeErr.Field,
				Err:   fmt.Errorf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
		}
		return &ParseError{Err: err}
	}
	return nil
}

// typeError re-decodes data into a scratch value of into's type to recover the
// offending field path, which the case-sensitive decoder keeps unexported.
func typeError(data []byte, into interface{}) *json.UnmarshalTypeError {
	t := reflect.TypeOf(into)
	if t == nil || t.Kind() != reflect.Pointer {
		return nil
	}
	scratch := reflect.New(t.Elem()).Interface()
	var typeErr *json.UnmarshalTypeError
	if errors.As(json.Unmarshal(data, scratch), &typeErr) {
		return typeErr
	}
	return nil
}

// Render writes a spec back to YAML using the wire key names.
func Render(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}
