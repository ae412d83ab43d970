package plugboard

import (
	"errors"

	"github.com/sergeii/enigma/internal/core/entities/alphabet"
)

// MaxPairs is the number of cables the board accepts; 13 pairs cover the
// whole alphabet.
const MaxPairs = 13

var (
	ErrInvalidPair  = errors.New("pair must be two distinct letters")
	ErrLetterReused = errors.New("letter is already used by another pair")
	ErrTooManyPairs = errors.New("too many plugboard pairs")
)

type pair struct {
	a byte
	b byte
}

// Plugboard applies a symmetric letter-pair substitution that is
// independent of rotor state.
type Plugboard struct {
	pairs []pair
}

var Blank Plugboard // nolint: gochecknoglobals

// New builds a plugboard from letter pairs given as two-letter strings,
// such as "AB". Each letter may appear in at most one pair.
func New(pairs ...string) (Plugboard, error) {
	if len(pairs) > MaxPairs {
		return Blank, ErrTooManyPairs
	}
	var used [alphabet.Size]bool
	pb := Plugboard{
		pairs: make([]pair, 0, len(pairs)),
	}
	for _, p := range pairs {
		if len(p) != 2 {
			return Blank, ErrInvalidPair
		}
		a, b := p[0], p[1]
		if !alphabet.Contains(a) || !alphabet.Contains(b) || a == b {
			return Blank, ErrInvalidPair
		}
		if used[alphabet.Index(a)] || used[alphabet.Index(b)] {
			return Blank, ErrLetterReused
		}
		used[alphabet.Index(a)] = true
		used[alphabet.Index(b)] = true
		pb.pairs = append(pb.pairs, pair{a: a, b: b})
	}
	return pb, nil
}

func MustNew(pairs ...string) Plugboard {
	pb, err := New(pairs...)
	if err != nil {
		panic(err)
	}
	return pb
}

// Swap returns the letter wired to c, or c itself when it is not plugged.
// The first matching pair wins.
func (pb Plugboard) Swap(c byte) byte {
	for _, p := range pb.pairs {
		switch c {
		case p.a:
			return p.b
		case p.b:
			return p.a
		}
	}
	return c
}

func (pb Plugboard) Len() int {
	return len(pb.pairs)
}
