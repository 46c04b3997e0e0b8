// Package driver runs expression lines through the pipeline
// lexer → postfix → eval and hands every outcome to a Sink.
//
// Process handles one line and keeps no state between calls. Run loops over
// a LineSource; RunFiles processes several inputs concurrently and writes
// their outputs in input order.
package driver
