package diagfmt

import (
	"fmt"

	"bares/internal/diag"
)

// Message renders the user-facing text of a line diagnostic; columns are
// printed 1-based.
func Message(d *diag.Diagnostic) string {
	col := d.Col() + 1
	switch d.Code {
	case diag.LexUnexpectedEnd:
		return fmt.Sprintf("Unexpected end of input at column (%d)!", col)
	case diag.LexIllFormedInteger:
		return fmt.Sprintf("Ill formed integer at column (%d)!", col)
	case diag.LexMissingTerm:
		return fmt.Sprintf("Missing <term> at column (%d)!", col)
	case diag.LexExtraneousSymbol:
		return fmt.Sprintf("Extraneous symbol after valid expression found at column (%d)!", col)
	case diag.LexIntegerOutOfRange:
		return fmt.Sprintf("Integer constant out of range beginning at column (%d)!", col)
	case diag.LexMissingClosing:
		return fmt.Sprintf("Missing closing \")\" at column (%d)!", col)
	case diag.InputLineTooLong:
		return "Input line too long!"
	case diag.EvalDivisionByZero:
		return "Division by zero!"
	case diag.EvalOverflow:
		return "Numeric overflow error!"
	}
	return "Unhandled error found!"
}
