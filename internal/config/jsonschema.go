package config

import (
	_ "embed"
	"encoding/json"
	"io"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed harness.schema.json
var harnessSchema string

const harnessSchemaURL = "harness.schema.json"

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledSchema compiles the embedded schema on first use.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft7

		if err := compiler.AddResource(harnessSchemaURL, strings.NewReader(harnessSchema)); err != nil {
			schemaErr = err
			return
		}
		schemaCompiled, schemaErr = compiler.Compile(harnessSchemaURL)
	})
	return schemaCompiled, schemaErr
}

// decodeJSON decodes a document the way the schema validator expects
// (numbers as json.Number).
func decodeJSON(r io.Reader) (interface{}, error) {
	var v interface{}
	d := json.NewDecoder(r)
	d.UseNumber()
	if err := d.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
