package sburger

import "fmt"

// Key schedule constants.
const (
	// KeySize is the cipher key size in bytes.
	KeySize = 32

	// BlockSize is the largest block the network transforms in one call.
	BlockSize = 32

	// paramCount is the number of B and of F parameters.
	paramCount = 4

	// chunkSize is the key slice summed for each F parameter.
	chunkSize = KeySize / paramCount

	// minTotalDigits is the width the key sum is zero-padded to before
	// its digits are indexed. Sums below 1000 would otherwise have too
	// few digits for B.
	minTotalDigits = 4
)

// Settings are the parameters derived from a key. They select which
// steps of the transformation network are active.
type Settings struct {
	// B values are in 0..11.
	B [paramCount]int
	// F values are in 0..9.
	F [paramCount]int
}

// String implements fmt.Stringer.
func (s Settings) String() string {
	return fmt.Sprintf("B=%v F=%v", s.B, s.F)
}

// DeriveSettings computes the settings for key. The result depends on the
// key bytes alone. It returns ErrKeyNotSet for the all-zero key.
func DeriveSettings(key *[KeySize]byte) (Settings, error) {
	if key == nil {
		return Settings{}, fmt.Errorf("%w: key is nil", ErrMissingInput)
	}
	if isZero(key[:]) {
		return Settings{}, ErrKeyNotSet
	}

	total := 0
	for _, b := range key {
		total += int(b)
	}
	td := digits(total, minTotalDigits)

	// At most 9+9, always inside the key.
	position := td[len(td)-1] + td[len(td)-2]
	pivot := key[position]
	pb := msbBits(pivot)

	var target byte = 1
	if pivot%2 == 1 {
		target = 0
	}

	var s Settings
	for i := range paramCount {
		s.B[i] = td[i] + countBit(pb[2*i:2*i+2], target)
	}
	for i := range paramCount {
		sum := 0
		for _, b := range key[chunkSize*i : chunkSize*(i+1)] {
			sum += int(b)
		}
		s.F[i] = digits(sum, 1)[0]
	}
	return s, nil
}
