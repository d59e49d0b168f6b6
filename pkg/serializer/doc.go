// Package serializer provides output and input plumbing for structured data.
//
// Three output formats are supported:
//   - JSON: indented, machine-readable
//   - YAML: human-readable, suitable for version control
//   - Table: flattened two-column text for terminal viewing
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.(serializer.Closer).Close()
//	if err := w.Serialize(ctx, data); err != nil { ... }
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// Reading supports JSON and YAML, with the format inferred from the file
// extension via FormatFromPath.
package serializer
