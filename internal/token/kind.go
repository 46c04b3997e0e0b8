package token

// Kind represents the category of an expression token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// Operand represents an integer literal, possibly signed.
	Operand

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Caret represents the exponentiation operator token.
	Caret // ^

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
)

var kindNames = [...]string{
	Invalid: "Invalid",
	Operand: "Operand",
	Plus:    "Plus",
	Minus:   "Minus",
	Star:    "Star",
	Slash:   "Slash",
	Percent: "Percent",
	Caret:   "Caret",
	LParen:  "LParen",
	RParen:  "RParen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// OperatorKind maps an operator byte to its kind.
func OperatorKind(b byte) (Kind, bool) {
	switch b {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	case '*':
		return Star, true
	case '/':
		return Slash, true
	case '%':
		return Percent, true
	case '^':
		return Caret, true
	}
	return Invalid, false
}

// Symbol returns the source spelling of fixed tokens.
func (k Kind) Symbol() string {
	switch k {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Percent:
		return "%"
	case Caret:
		return "^"
	case LParen:
		return "("
	case RParen:
		return ")"
	}
	return ""
}

// IsOperator reports whether k is one of the six binary operators.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent, Caret:
		return true
	}
	return false
}

// Precedence returns the binding power of an operator.
// Parentheses and operands bind lowest and are never compared.
func (k Kind) Precedence() int {
	switch k {
	case Caret:
		return 3
	case Star, Slash, Percent:
		return 2
	case Plus, Minus:
		return 1
	}
	return -1
}
