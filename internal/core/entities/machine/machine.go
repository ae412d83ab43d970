package machine

import (
	"errors"
	"strings"

	"github.com/sergeii/enigma/internal/core/entities/alphabet"
	"github.com/sergeii/enigma/internal/core/entities/plugboard"
	"github.com/sergeii/enigma/internal/core/entities/reflector"
	"github.com/sergeii/enigma/internal/core/entities/rotor"
)

var ErrUnknownRotor = errors.New("unknown rotor selector")

// Machine is a three-rotor cipher machine. It owns its rotors' mutable
// positions exclusively; the cipher is reciprocal, so enciphering a
// ciphertext on a freshly built machine with the same settings yields
// the plaintext back. EncryptChar and Process advance rotor state, so a
// caller sharing one instance across goroutines must serialize access.
type Machine struct {
	left      rotor.Rotor
	middle    rotor.Rotor
	right     rotor.Rotor
	plugboard plugboard.Plugboard
}

// New builds a machine from three rotor selectors (indices into
// rotor.Specs, left to right), initial positions, ring settings and a
// plugboard.
func New(rotors, positions, rings [3]int, pb plugboard.Plugboard) (*Machine, error) {
	var specs [3]rotor.Spec
	for i, selector := range rotors {
		if selector < 0 || selector >= len(rotor.Specs) {
			return nil, ErrUnknownRotor
		}
		specs[i] = rotor.Specs[selector]
	}
	return &Machine{
		left:      rotor.New(specs[0], positions[0], rings[0]),
		middle:    rotor.New(specs[1], positions[1], rings[1]),
		right:     rotor.New(specs[2], positions[2], rings[2]),
		plugboard: pb,
	}, nil
}

func MustNew(rotors, positions, rings [3]int, pb plugboard.Plugboard) *Machine {
	m, err := New(rotors, positions, rings, pb)
	if err != nil {
		panic(err)
	}
	return m
}

// step advances the rotors before a letter is enciphered. The right
// rotor's notch carries the middle rotor over; the middle rotor's notch
// carries the left rotor over but never re-steps the middle rotor
// itself in the same keypress.
func (m *Machine) step() {
	if m.right.AtNotch() {
		m.middle.Step()
	}
	if m.middle.AtNotch() {
		m.left.Step()
	}
	m.right.Step()
}

// EncryptChar enciphers a single byte. Anything outside the alphabet is
// returned unchanged without advancing the rotors.
func (m *Machine) EncryptChar(c byte) byte {
	if !alphabet.Contains(c) {
		return c
	}
	m.step()
	c = m.plugboard.Swap(c)
	c = m.right.Forward(c)
	c = m.middle.Forward(c)
	c = m.left.Forward(c)
	c = reflector.Reflect(c)
	c = m.left.Backward(c)
	c = m.middle.Backward(c)
	c = m.right.Backward(c)
	return m.plugboard.Swap(c)
}

// Process uppercases the whole text and enciphers it byte by byte. The
// result has the same length as the input; non-alphabetic bytes pass
// through verbatim.
func (m *Machine) Process(text string) string {
	upper := strings.ToUpper(text)
	var out strings.Builder
	out.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		out.WriteByte(m.EncryptChar(upper[i]))
	}
	return out.String()
}

// Positions reports the current left, middle and right rotor positions.
func (m *Machine) Positions() [3]int {
	return [3]int{m.left.Position(), m.middle.Position(), m.right.Position()}
}
