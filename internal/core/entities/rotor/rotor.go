package rotor

import (
	"strings"

	"github.com/sergeii/enigma/internal/core/entities/alphabet"
	"github.com/sergeii/enigma/pkg/modmath"
)

// Spec describes a rotor wheel: a wiring permutation of the alphabet,
// where position i maps to Wiring[i], and the letter at which the wheel
// carries its neighbor over.
type Spec struct {
	Wiring string
	Notch  byte
}

// Historical Enigma I wheels.
var (
	I   = Spec{Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notch: 'Q'} // nolint: gochecknoglobals
	II  = Spec{Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notch: 'E'} // nolint: gochecknoglobals
	III = Spec{Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notch: 'V'} // nolint: gochecknoglobals

	Specs = []Spec{I, II, III} // nolint: gochecknoglobals
)

// Rotor is a single substitution wheel. The ring setting is fixed at
// construction; the position advances by one for every Step call.
type Rotor struct {
	wiring   string
	notch    byte
	ring     int
	position int
}

func New(spec Spec, position, ring int) Rotor {
	return Rotor{
		wiring:   spec.Wiring,
		notch:    spec.Notch,
		ring:     modmath.Mod(ring, alphabet.Size),
		position: modmath.Mod(position, alphabet.Size),
	}
}

// Forward substitutes a letter on the pass from the keyboard towards the
// reflector. The current position and ring setting shift the wiring
// relative to the entry point.
func (r Rotor) Forward(c byte) byte {
	shifted := modmath.Mod(alphabet.Index(c)+r.position-r.ring, alphabet.Size)
	sub := r.wiring[shifted]
	return alphabet.Letter(alphabet.Index(sub) - r.position + r.ring)
}

// Backward substitutes a letter on the return pass from the reflector.
// It inverts Forward for the same rotor state by looking the letter up
// in the wiring rather than consulting a precomputed inverse table.
func (r Rotor) Backward(c byte) byte {
	shifted := modmath.Mod(alphabet.Index(c)+r.position-r.ring, alphabet.Size)
	sub := strings.IndexByte(r.wiring, alphabet.Letters[shifted])
	return alphabet.Letter(sub - r.position + r.ring)
}

// Step advances the rotor by one position. This is the only operation
// that mutates a rotor.
func (r *Rotor) Step() {
	r.position = modmath.Mod(r.position+1, alphabet.Size)
}

// AtNotch reports whether the rotor sits at its carry-over position.
func (r Rotor) AtNotch() bool {
	return r.position == alphabet.Index(r.notch)
}

func (r Rotor) Position() int {
	return r.position
}
