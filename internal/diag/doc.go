// Package diag defines the diagnostic model shared by the pipeline stages.
//
// # Purpose
//
//   - Provide a small, deterministic record (Diagnostic) describing the first
//     failure found on an input line.
//   - Offer light-weight utilities (Reporter, Bag) that let stages emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt, orchestration in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Info, Warning or Error (severity.go).
//   - Code – compact numeric identifier with a stable string form (codes.go).
//   - Primary – the column span inside the line; meaningful only when
//     Code.Positional() is true.
//   - Source/Line – where the line came from; filled in by the driver.
//
// A *Diagnostic implements error, so stages return it through ordinary
// (value, error) results and callers inspect it with AsDiagnostic.
package diag
