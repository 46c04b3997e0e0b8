package eval

import (
	"fmt"
	"math"
	"strings"

	"fortio.org/safecast"
)

// Domain is the integer type every result must fit into.
type Domain uint8

const (
	Int16 Domain = iota // по умолчанию, как short в исходной программе
	Int8
	Int32
)

// DefaultDomain is used when nothing else is configured.
const DefaultDomain = Int16

var domainNames = [...]string{
	Int8:  "int8",
	Int16: "int16",
	Int32: "int32",
}

func (d Domain) String() string {
	if int(d) < len(domainNames) {
		return domainNames[d]
	}
	return fmt.Sprintf("Domain(%d)", uint8(d))
}

// ParseDomain accepts int8, int16, int32 and the aliases byte, short, int.
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int8", "byte", "i8":
		return Int8, nil
	case "int16", "short", "i16", "":
		return Int16, nil
	case "int32", "int", "i32":
		return Int32, nil
	}
	return 0, fmt.Errorf("unknown result domain %q (want int8, int16 or int32)", s)
}

func (d Domain) Min() int64 {
	switch d {
	case Int8:
		return math.MinInt8
	case Int32:
		return math.MinInt32
	}
	return math.MinInt16
}

func (d Domain) Max() int64 {
	switch d {
	case Int8:
		return math.MaxInt8
	case Int32:
		return math.MaxInt32
	}
	return math.MaxInt16
}

// InputMin and InputMax bound integer literals: twice the width of the
// domain, capped at int64.
func (d Domain) InputMin() int64 {
	switch d {
	case Int8:
		return math.MinInt16
	case Int32:
		return math.MinInt64
	}
	return math.MinInt32
}

func (d Domain) InputMax() int64 {
	switch d {
	case Int8:
		return math.MaxInt16
	case Int32:
		return math.MaxInt64
	}
	return math.MaxInt32
}

// Contains reports whether v is representable in the domain.
func (d Domain) Contains(v int64) bool {
	var err error
	switch d {
	case Int8:
		_, err = safecast.Conv[int8](v)
	case Int32:
		_, err = safecast.Conv[int32](v)
	default:
		_, err = safecast.Conv[int16](v)
	}
	return err == nil
}
