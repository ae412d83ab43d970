package alphabet

import (
	"strings"

	"github.com/sergeii/enigma/pkg/modmath"
)

// Letters is the fixed ordering shared by all cipher components.
// Every letter maps bijectively to its index.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const Size = len(Letters)

// Index returns the 0-25 index of an uppercase letter, or -1 for any other byte.
func Index(c byte) int {
	return strings.IndexByte(Letters, c)
}

func Contains(c byte) bool {
	return Index(c) != -1
}

// Letter maps an index back to its letter, wrapping out-of-range values.
func Letter(i int) byte {
	return Letters[modmath.Mod(i, Size)]
}
