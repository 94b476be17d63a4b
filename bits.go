package sburger

import (
	"math/bits"
	"strconv"
)

func rotl(b byte, n int) byte { return bits.RotateLeft8(b, n) }

func rotr(b byte, n int) byte { return bits.RotateLeft8(b, -n) }

func invert(b byte) byte { return ^b }

// msbBits returns the bits of b, most significant first.
func msbBits(b byte) [8]byte {
	var out [8]byte
	for i := range out {
		out[i] = (b >> (7 - i)) & 1
	}
	return out
}

// countBit returns how many of bs equal v.
func countBit(bs []byte, v byte) int {
	n := 0
	for _, b := range bs {
		if b == v {
			n++
		}
	}
	return n
}

// digits returns the decimal digits of n, most significant first,
// left-padded with zeros to at least width digits.
func digits(n, width int) []int {
	s := strconv.Itoa(n)
	out := make([]int, 0, max(len(s), width))
	for i := len(s); i < width; i++ {
		out = append(out, 0)
	}
	for _, c := range s {
		out = append(out, int(c-'0'))
	}
	return out
}

func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
