package rotor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/entities/alphabet"
	"github.com/sergeii/enigma/internal/core/entities/rotor"
)

func TestRotor_Forward(t *testing.T) {
	tests := []struct {
		name     string
		spec     rotor.Spec
		position int
		ring     int
		in       byte
		want     byte
	}{
		{
			"wheel I at rest maps straight through the wiring",
			rotor.I,
			0,
			0,
			'A',
			'E',
		},
		{
			"wheel I advanced by one",
			rotor.I,
			1,
			0,
			'A',
			'J',
		},
		{
			"ring setting offsets the position",
			rotor.I,
			1,
			1,
			'A',
			'E',
		},
		{
			"wheel II at rest",
			rotor.II,
			0,
			0,
			'A',
			'A',
		},
		{
			"wheel III at rest",
			rotor.III,
			0,
			0,
			'Z',
			'O',
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rotor.New(tt.spec, tt.position, tt.ring)
			assert.Equal(t, string(tt.want), string(r.Forward(tt.in)))
		})
	}
}

func TestRotor_BackwardInvertsForward(t *testing.T) {
	for _, spec := range rotor.Specs {
		for position := 0; position < alphabet.Size; position++ {
			for _, ring := range []int{0, 1, 7, 25} {
				r := rotor.New(spec, position, ring)
				for i := 0; i < alphabet.Size; i++ {
					c := alphabet.Letter(i)
					require.Equal(t, c, r.Backward(r.Forward(c)))
				}
			}
		}
	}
}

func TestRotor_Step(t *testing.T) {
	r := rotor.New(rotor.I, 0, 0)
	r.Step()
	assert.Equal(t, 1, r.Position())

	r = rotor.New(rotor.I, 25, 0)
	r.Step()
	assert.Equal(t, 0, r.Position())
}

func TestRotor_StepDoesNotAffectSubstitution(t *testing.T) {
	fixed := rotor.New(rotor.I, 5, 2)
	stepped := rotor.New(rotor.I, 4, 2)
	stepped.Step()
	for i := 0; i < alphabet.Size; i++ {
		c := alphabet.Letter(i)
		assert.Equal(t, fixed.Forward(c), stepped.Forward(c))
		assert.Equal(t, fixed.Backward(c), stepped.Backward(c))
	}
}

func TestRotor_AtNotch(t *testing.T) {
	tests := []struct {
		name     string
		spec     rotor.Spec
		position int
		want     bool
	}{
		{
			"wheel I carries over at Q",
			rotor.I,
			16,
			true,
		},
		{
			"wheel I off its notch",
			rotor.I,
			15,
			false,
		},
		{
			"wheel II carries over at E",
			rotor.II,
			4,
			true,
		},
		{
			"wheel III carries over at V",
			rotor.III,
			21,
			true,
		},
		{
			"wheel III at rest",
			rotor.III,
			0,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := rotor.New(tt.spec, tt.position, 0)
			assert.Equal(t, tt.want, r.AtNotch())
		})
	}
}

func TestRotor_New_NormalizesOutOfRangeValues(t *testing.T) {
	r := rotor.New(rotor.I, 26, -1)
	assert.Equal(t, 0, r.Position())
	reference := rotor.New(rotor.I, 0, 25)
	for i := 0; i < alphabet.Size; i++ {
		c := alphabet.Letter(i)
		assert.Equal(t, reference.Forward(c), r.Forward(c))
	}
}

func TestSpecs_AreValidPermutations(t *testing.T) {
	for _, spec := range rotor.Specs {
		require.Len(t, spec.Wiring, alphabet.Size)
		seen := make(map[byte]bool, alphabet.Size)
		for i := 0; i < len(spec.Wiring); i++ {
			c := spec.Wiring[i]
			require.True(t, alphabet.Contains(c))
			require.False(t, seen[c])
			seen[c] = true
		}
		require.True(t, alphabet.Contains(spec.Notch))
	}
}
