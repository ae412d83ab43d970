package reflector

import (
	"github.com/sergeii/enigma/internal/core/entities/alphabet"
)

// Table is the fixed UKW-B reflector wiring. It is an involution over
// letter indices with no letter mapping to itself, which is what makes
// the whole cipher reciprocal.
const Table = "YRUHQSLDPXNGOKMIEBFZCWVJAT"

func Reflect(c byte) byte {
	return Table[alphabet.Index(c)]
}
