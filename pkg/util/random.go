package util

import (
	"fmt"
	"math/rand"
)

// GenerateVerificationCode returns a 6-digit numeric code as a string,
// zero-padded (e.g. "042317").
func GenerateVerificationCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}
