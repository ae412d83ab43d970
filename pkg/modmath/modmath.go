package modmath

// Mod returns the non-negative residue of n modulo m, in [0, m).
// Unlike the % operator, the result is never negative.
func Mod(n, m int) int {
	return ((n % m) + m) % m
}
