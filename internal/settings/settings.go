package settings

import (
	"github.com/sergeii/enigma/internal/core/entities/alphabet"
	"github.com/sergeii/enigma/internal/core/entities/plugboard"
	"github.com/sergeii/enigma/internal/core/entities/rotor"
	"github.com/sergeii/enigma/pkg/random"
)

// MachineConfig carries the full daily key for a machine: which wheels
// go into the left, middle and right slots, their initial positions and
// ring settings, and the plugboard cabling.
type MachineConfig struct {
	Rotors    [3]int   `validate:"dive,min=0,max=2"`
	Positions [3]int   `validate:"dive,min=0,max=25"`
	Rings     [3]int   `validate:"dive,min=0,max=25"`
	Plugboard []string `validate:"max=13,unique,dive,letterpair"`
}

// Randomize produces a random valid machine configuration: a random
// wheel order, random positions and rings, and up to ten plugboard
// pairs drawn without reusing letters.
func Randomize() MachineConfig {
	wheels := random.Perm(len(rotor.Specs))
	letters := random.Perm(alphabet.Size)

	pairCount := random.RandInt(0, 11)
	pairs := make([]string, 0, pairCount)
	for i := 0; i < pairCount; i++ {
		a := alphabet.Letter(letters[2*i])
		b := alphabet.Letter(letters[2*i+1])
		pairs = append(pairs, string([]byte{a, b}))
	}

	return MachineConfig{
		Rotors:    [3]int{wheels[0], wheels[1], wheels[2]},
		Positions: [3]int{random.RandInt(0, 26), random.RandInt(0, 26), random.RandInt(0, 26)},
		Rings:     [3]int{random.RandInt(0, 26), random.RandInt(0, 26), random.RandInt(0, 26)},
		Plugboard: pairs,
	}
}

// Board builds the plugboard described by the configuration.
func (cfg MachineConfig) Board() (plugboard.Plugboard, error) {
	return plugboard.New(cfg.Plugboard...)
}
