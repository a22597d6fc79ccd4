// Package seed loads the initial task list for a session from a JSON file.
//
// The file format is validated against an embedded JSON Schema:
//
//	{
//	  "tasks": [
//	    {"id": "t1", "name": "Buy milk", "completed": false},
//	    {"id": "t2", "name": "Walk dog", "completed": true}
//	  ]
//	}
//
// Ids must be unique. Seed files are read once; the session never writes back.
package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"todomatic/internal/task"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "seed.schema.json"

// ErrDuplicateID is reported when two seed tasks share an id.
var ErrDuplicateID = errors.New("duplicate task id")

// ValidationError represents a seed validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// File is the seed document.
type File struct {
	Tasks []task.Task `json:"tasks"`
}

// Load reads and validates a seed file from path.
func Load(path string) ([]task.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	tasks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return tasks, nil
}

// Parse validates data against the seed schema and returns its tasks.
// All schema violations are joined into the returned error.
func Parse(data []byte) ([]task.Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, schemaErrors(err)
	}

	var f File
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	seen := make(map[string]int, len(f.Tasks))
	for i, t := range f.Tasks {
		if first, ok := seen[t.ID]; ok {
			return nil, &ValidationError{
				Path: fmt.Sprintf("tasks[%d].id", i),
				Err:  fmt.Errorf("%w %q (first used by tasks[%d])", ErrDuplicateID, t.ID, first),
			}
		}
		seen[t.ID] = i
	}

	if f.Tasks == nil {
		f.Tasks = []task.Task{}
	}
	return f.Tasks, nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("load seed schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile seed schema: %w", err)
	}
	return schema, nil
}

// schemaErrors flattens a jsonschema error tree into ValidationErrors.
func schemaErrors(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	var errs []error
	collectSchemaErrors(ve, &errs)
	return errors.Join(errs...)
}

func collectSchemaErrors(err *jsonschema.ValidationError, errs *[]error) {
	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  errors.New(err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, errs)
	}
}

// jsonPointerToPath turns "/tasks/0/name" into "tasks[0].name".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
