package sburger

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func keyOf(b []byte) *[KeySize]byte {
	var k [KeySize]byte
	copy(k[:], b)
	return &k
}

func testKey() []byte {
	return bytes.Repeat([]byte("TESTKEY_"), 4)
}

func TestDeriveSettingsKnownAnswers(t *testing.T) {
	seq := make([]byte, 32)
	for i := range seq {
		seq[i] = byte(i)
	}
	last5 := make([]byte, 32)
	last5[31] = 5

	tests := []struct {
		name string
		key  []byte
		want Settings
	}{
		{
			// sum 2592, pivot key[11] = 'T'
			name: "ascii",
			key:  testKey(),
			want: Settings{B: [4]int{3, 6, 10, 2}, F: [4]int{6, 6, 6, 6}},
		},
		{
			// sum 8160, the largest possible
			name: "all ones bits",
			key:  bytes.Repeat([]byte{0xFF}, 32),
			want: Settings{B: [4]int{8, 1, 6, 0}, F: [4]int{2, 2, 2, 2}},
		},
		{
			// sum 496 reads as "0496"
			name: "three digit sum",
			key:  seq,
			want: Settings{B: [4]int{2, 6, 9, 6}, F: [4]int{2, 9, 1, 2}},
		},
		{
			// sum 32 reads as "0032"
			name: "two digit sum",
			key:  bytes.Repeat([]byte{1}, 32),
			want: Settings{B: [4]int{2, 2, 5, 3}, F: [4]int{8, 8, 8, 8}},
		},
		{
			// sum 5 reads as "0005"
			name: "single digit sum",
			key:  last5,
			want: Settings{B: [4]int{0, 0, 0, 5}, F: [4]int{0, 0, 0, 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveSettings(keyOf(tt.key))
			if err != nil {
				t.Fatalf("DeriveSettings: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeriveSettingsZeroKey(t *testing.T) {
	_, err := DeriveSettings(new([KeySize]byte))
	if !IsKeyNotSet(err) {
		t.Errorf("expected ErrKeyNotSet, got %v", err)
	}
}

func TestDeriveSettingsNilKey(t *testing.T) {
	_, err := DeriveSettings(nil)
	if !IsMissingInput(err) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
}

func TestDeriveSettingsRanges(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		var key [KeySize]byte
		for i := range key {
			key[i] = byte(r.UintN(256))
		}
		if isZero(key[:]) {
			continue
		}

		s, err := DeriveSettings(&key)
		if err != nil {
			t.Fatalf("DeriveSettings(%x): %v", key, err)
		}
		for i := range paramCount {
			if s.B[i] < 0 || s.B[i] > 11 {
				t.Fatalf("B[%d] = %d out of range for key %x", i, s.B[i], key)
			}
			if s.F[i] < 0 || s.F[i] > 9 {
				t.Fatalf("F[%d] = %d out of range for key %x", i, s.F[i], key)
			}
		}

		again, err := DeriveSettings(&key)
		if err != nil {
			t.Fatal(err)
		}
		if again != s {
			t.Fatalf("DeriveSettings not deterministic: %v then %v", s, again)
		}
	}
}

func TestSettingsString(t *testing.T) {
	s := Settings{B: [4]int{3, 6, 10, 2}, F: [4]int{6, 6, 6, 6}}
	if got, want := s.String(), "B=[3 6 10 2] F=[6 6 6 6]"; got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
}
