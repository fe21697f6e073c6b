// Package rot provides functions for rotating lowercase letters by a given number of positions.
package rot

const letters = 26

// Offset returns the position of r in the alphabet.
func Offset(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}

// Rot rotates the lowercase letter r by n positions. n may be negative.
func Rot(r rune, n int) rune {
	i, ok := Offset(r)
	if !ok {
		panic("rot: input must be a lowercase letter")
	}

	// Floored modulo, % truncates toward zero
	i = (i + n) % letters
	if i < 0 {
		i += letters
	}
	return 'a' + rune(i)
}
