package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldFunc      = "func"
	FieldName      = "name"
	FieldFile      = "file"
	FieldResult    = "result"
	FieldCount     = "count"
)

// Component names
const (
	ComponentCLI   = "cli"
	ComponentBatch = "batch"
)
