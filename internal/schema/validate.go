// Package schema validates runner result files against embedded JSON schemas.
package schema

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed *.schema.json
var schemaFS embed.FS

const (
	apiSchemaName = "api-result.schema.json"
	uiSchemaName  = "ui-result.schema.json"
)

var (
	apiSchema   *jsonschema.Schema
	uiSchema    *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		for _, name := range []string{apiSchemaName, uiSchemaName} {
			data, err := schemaFS.ReadFile(name)
			if err != nil {
				compileErr = fmt.Errorf("read %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("unmarshal %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				compileErr = fmt.Errorf("add %s resource: %w", name, err)
				return
			}
		}

		var err error
		apiSchema, err = compiler.Compile(apiSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile api schema: %w", err)
			return
		}
		uiSchema, err = compiler.Compile(uiSchemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile ui schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateAPIResult validates an API runner result document.
func ValidateAPIResult(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validate(apiSchema, data, "api result")
}

// ValidateUIResult validates a UI runner result document.
func ValidateUIResult(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}
	return validate(uiSchema, data, "ui result")
}

func validate(s *jsonschema.Schema, data []byte, what string) error {
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("%s validation failed: %w", what, err)
	}
	return nil
}
