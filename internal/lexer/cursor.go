package lexer

import (
	"unicode/utf8"

	"bares/internal/source"
)

// Cursor представляет собой позицию в строке.
// Off считается в байтах, Col — в рунах.
type Cursor struct {
	Src string
	Off int
	Col uint32
}

// NewCursor creates a new cursor at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{Src: src}
}

// EOF проверяет, достигнут ли конец строки
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.Src)
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Bump перемещает курсор на одну руну вперед и возвращает её первый байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	if b < utf8.RuneSelf {
		c.Off++
	} else {
		_, sz := utf8.DecodeRuneInString(c.Src[c.Off:])
		c.Off += sz
	}
	c.Col++
	return b
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark struct {
	off int
	col uint32
}

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark{off: c.Off, col: c.Col}
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: m.col, End: c.Col}
}

// TextFrom returns the raw text consumed since m.
func (c *Cursor) TextFrom(m Mark) string {
	return c.Src[m.off:c.Off]
}

// Here returns a one-column span at the cursor (empty at end of line).
func (c *Cursor) Here() source.Span {
	if c.EOF() {
		return source.Span{Start: c.Col, End: c.Col}
	}
	return source.At(c.Col)
}
