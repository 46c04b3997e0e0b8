package source

// Line is a single input line together with its origin.
type Line struct {
	Name string // имя источника ("<stdin>", путь к файлу)
	Num  uint32 // 1-based
	Text string // без завершающего \n / \r\n

	// Overlong marks a line that exceeded the reader's limit; Text is empty.
	Overlong bool
}

// LineCol represents a human-readable position in an input.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// Pos converts a 0-based column of the line into a 1-based position.
func (l Line) Pos(col uint32) LineCol {
	return LineCol{Line: l.Num, Col: col + 1}
}
