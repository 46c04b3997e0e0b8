// Package token defines the tokens of an arithmetic expression line.
// Invariants:
//   - Token.Span is measured in runes of the original line (0-based columns).
//   - Operand.Text holds an optional leading '-' followed by decimal digits;
//     a leading '+' sign is never kept.
//   - Tokens are values; sequences are rebuilt, never mutated in place.
package token
