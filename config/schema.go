package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema builds the JSON Schema describing flux.yml. The output is
// embedded by the schema package; regenerate with `go generate ./config`.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Extension blocks may add arbitrary top-level keys.
		AllowAdditionalProperties: true,
		// Expand struct references instead of using $ref for a flat schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	// Temporary struct describing the full document, including the "logging"
	// extension block. The shapes mirror logging.Config; they are restated
	// here because the logging package depends on this one.
	type fileSink struct {
		Enabled bool   `yaml:"enabled,omitempty" jsonschema:"description=Enable logging to a file"`
		Path    string `yaml:"path,omitempty" jsonschema:"description=Full path to the log file"`
		Format  string `yaml:"format,omitempty" jsonschema:"description=File log format,enum=text,enum=json"`
	}
	type format struct {
		Preset             string `yaml:"preset,omitempty" jsonschema:"description=Log output preset,enum=default,enum=simple,enum=json"`
		DisableTimestamp   bool   `yaml:"disable_timestamp,omitempty" jsonschema:"description=Omit the timestamp from text output"`
		DisableComponent   bool   `yaml:"disable_component,omitempty" jsonschema:"description=Omit the component name from text output"`
		StructuredToStderr string `yaml:"structured_to_stderr,omitempty" jsonschema:"description=When to send structured logs to stderr,enum=auto,enum=always,enum=never"`
	}
	type loggingBlock struct {
		Level        string   `yaml:"level,omitempty" jsonschema:"description=Minimum log level,enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
		ReportCaller bool     `yaml:"report_caller,omitempty" jsonschema:"description=Include file/line/function in log output"`
		File         fileSink `yaml:"file,omitempty" jsonschema:"description=File sink configuration"`
		Format       format   `yaml:"format,omitempty" jsonschema:"description=Output format configuration"`
	}
	type BaseConfig struct {
		Mode    string        `yaml:"mode,omitempty" jsonschema:"description=Runtime mode,enum=development,enum=production"`
		Logging *loggingBlock `yaml:"logging,omitempty" jsonschema:"description=Diagnostic logging configuration"`
	}

	schema := r.Reflect(&BaseConfig{})
	schema.Title = "Flux Configuration"
	schema.Description = "Schema for flux.yml runtime configuration."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
