package licensecrypto

import (
	"math/bits"
	"strings"
)

// Charset is the key alphabet: uppercase letters, then digits.
const Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	blockCount = 5
	blockSize  = 5
	separator  = '-'

	// KeyLength is the length of a formatted key including separators.
	KeyLength = blockCount*blockSize + blockCount - 1

	blockStride = 0xABCDE
	charStride  = 0x12345
)

func complexTransform(x uint64) uint64 {
	x ^= 0xA5A5A5A5A5A5A5A5
	x = bits.RotateLeft64(x, 21)
	x *= 0xC6BC279692B5C323
	x ^= x >> 29
	x += 0x165667B19E3779F9
	x ^= x << 32
	return x
}

func mapToChar(v uint64) byte {
	return Charset[v%uint64(len(Charset))]
}

func generateBlock(sb *strings.Builder, base uint64) {
	for j := uint64(0); j < blockSize; j++ {
		base = complexTransform(base + j*charStride)
		sb.WriteByte(mapToChar(base))
	}
}

// GenerateKey expands seed into a formatted key. The same seed always
// yields the same key.
func GenerateKey(seed uint64) string {
	randomBase := newEngine(seed).Uint64()

	var sb strings.Builder
	sb.Grow(KeyLength)
	for i := uint64(0); i < blockCount; i++ {
		generateBlock(&sb, complexTransform(randomBase+i*blockStride))
		if i != blockCount-1 {
			sb.WriteByte(separator)
		}
	}
	return sb.String()
}
