package util

import (
	"math/rand/v2"
	"strings"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max.
func RandomInt(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// RandomString generates a random string of length n.
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.IntN(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomLogin generates a random user login.
func RandomLogin() string {
	return RandomString(12)
}

// RandomName generates a random display name of two words.
func RandomName() string {
	return strings.ToUpper(RandomString(1)) + RandomString(5) + " " + strings.ToUpper(RandomString(1)) + RandomString(7)
}
