package lexer

// ===== Классификаторы =====

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isBlank(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func isSign(b byte) bool { return b == '+' || b == '-' }

// Символы, которые не могут стоять вплотную после цифр: "1.3", "32a23", "7_0".
func isNumeralTail(b byte) bool {
	return b == '_' || b == '.' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// skipBlanks пропускает пробельные символы внутри строки.
func (lx *Lexer) skipBlanks() {
	for !lx.cursor.EOF() && isBlank(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
