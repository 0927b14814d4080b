package importer

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed snapshot.schema.json
var snapshotSchemaJSON []byte

const snapshotSchemaURL = "https://shopfloor.local/snapshot.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func snapshotSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.AssertFormat = true
		if err := compiler.AddResource(snapshotSchemaURL, bytes.NewReader(snapshotSchemaJSON)); err != nil {
			compileErr = fmt.Errorf("add snapshot schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(snapshotSchemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compile snapshot schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// SchemaError is a structural problem found by the JSON schema.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "snapshot: " + e.Message
	}
	return fmt.Sprintf("snapshot %s: %s", e.Path, e.Message)
}

func validateAgainstSchema(data []byte) error {
	schema, err := snapshotSchema()
	if err != nil {
		return err
	}

	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}

	if err := schema.Validate(obj); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return &SchemaError{Message: err.Error()}
		}
		var leaves []error
		collectLeafErrors(ve, &leaves)
		if len(leaves) == 0 {
			return &SchemaError{Message: ve.Message}
		}
		return errors.Join(leaves...)
	}
	return nil
}

// collectLeafErrors walks the cause tree and keeps the innermost errors,
// which name the offending field.
func collectLeafErrors(err *jsonschema.ValidationError, out *[]error) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*out = append(*out, &SchemaError{
			Path:    jsonPointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectLeafErrors(cause, out)
	}
}

// jsonPointerToPath turns "/projects/0/vendor" into "projects[0].vendor".
func jsonPointerToPath(pointer string) string {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return ""
	}
	var b strings.Builder
	for i, part := range strings.Split(pointer, "/") {
		part = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
		if isIndex(part) {
			b.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
