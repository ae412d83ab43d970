package random

import (
	mrand "math/rand"
)

func RandInt(min, max int) int {
	return mrand.Intn(max-min) + min // nolint: gosec
}

func Perm(n int) []int {
	return mrand.Perm(n) // nolint: gosec
}
