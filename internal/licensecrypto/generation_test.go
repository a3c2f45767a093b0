package licensecrypto

import (
	"regexp"
	"strings"
	"testing"
)

var keyPattern = regexp.MustCompile(`^[A-Z0-9]{5}(-[A-Z0-9]{5}){4}$`)

func TestGenerateKeyGolden(t *testing.T) {
	tests := []struct {
		seed uint64
		want string
	}{
		{seed: 0, want: "2IEX1-DUDBD-IJYW9-9RHKZ-PL6SK"},
		{seed: 1, want: "XRJWE-QN7EJ-171W1-YZ2XW-2JJFY"},
		{seed: 42, want: "FUIBX-AH0QX-OCEGX-SJ8H1-5YF1N"},
		{seed: 0xDEADBEEF, want: "X948E-0C0LX-DF30N-VJ8HO-ICR9V"},
		{seed: ^uint64(0), want: "6P9XY-6K8A9-CNQRV-9ZIHS-3VQIQ"},
	}
	for _, tt := range tests {
		if got := GenerateKey(tt.seed); got != tt.want {
			t.Fatalf("seed %#x: expected %q, got %q", tt.seed, tt.want, got)
		}
	}
}

func TestGenerateKeyDeterministic(t *testing.T) {
	first := GenerateKey(123456789)
	for i := 0; i < 10; i++ {
		if got := GenerateKey(123456789); got != first {
			t.Fatalf("expected %q on repeat, got %q", first, got)
		}
	}
}

func TestGenerateKeyFormat(t *testing.T) {
	for seed := uint64(0); seed < 2000; seed++ {
		key := GenerateKey(seed * 0x9E3779B97F4A7C15)
		if len(key) != KeyLength {
			t.Fatalf("expected length %d, got %d (%q)", KeyLength, len(key), key)
		}
		if !keyPattern.MatchString(key) {
			t.Fatalf("key %q does not match format", key)
		}
		for _, pos := range []int{5, 11, 17, 23} {
			if key[pos] != '-' {
				t.Fatalf("expected hyphen at %d in %q", pos, key)
			}
		}
		for _, r := range strings.ReplaceAll(key, "-", "") {
			if !strings.ContainsRune(Charset, r) {
				t.Fatalf("character %q outside alphabet in %q", r, key)
			}
		}
	}
}

func TestGenerateKeySeedIndependence(t *testing.T) {
	seen := make(map[string]uint64, 10000)
	for seed := uint64(0); seed < 10000; seed++ {
		key := GenerateKey(seed)
		if prev, ok := seen[key]; ok {
			t.Fatalf("seeds %d and %d both produced %q", prev, seed, key)
		}
		seen[key] = seed
	}
}

func TestComplexTransformKnownValues(t *testing.T) {
	tests := []struct {
		in   uint64
		want uint64
	}{
		{in: 0, want: 0xe8f99de171e57fb3},
		{in: 1, want: 0x1a9ec261bcd449f8},
		{in: ^uint64(0), want: 0x7eae392fb27dfc5d},
	}
	for _, tt := range tests {
		if got := complexTransform(tt.in); got != tt.want {
			t.Fatalf("complexTransform(%#x): expected %#x, got %#x", tt.in, tt.want, got)
		}
	}
}

func TestMapToChar(t *testing.T) {
	tests := []struct {
		in   uint64
		want byte
	}{
		{in: 0, want: 'A'},
		{in: 25, want: 'Z'},
		{in: 26, want: '0'},
		{in: 35, want: '9'},
		{in: 36, want: 'A'},
		{in: ^uint64(0), want: Charset[(^uint64(0))%36]},
	}
	for _, tt := range tests {
		if got := mapToChar(tt.in); got != tt.want {
			t.Fatalf("mapToChar(%d): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
