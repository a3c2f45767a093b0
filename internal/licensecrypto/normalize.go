package licensecrypto

import (
	"errors"
	"strings"
)

// ErrMalformedKey is returned when input cannot be read as a key.
var ErrMalformedKey = errors.New("malformed license key")

func NormalizeKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// ValidKey reports whether s is a key in canonical form.
func ValidKey(s string) bool {
	if len(s) != KeyLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if (i+1)%(blockSize+1) == 0 {
			if s[i] != separator {
				return false
			}
			continue
		}
		if strings.IndexByte(Charset, s[i]) < 0 {
			return false
		}
	}
	return true
}

// ParseKey accepts a key typed loosely (any case, spaces, missing hyphens)
// and returns it in canonical form.
func ParseKey(s string) (string, error) {
	n := NormalizeKey(s)
	if len(n) != blockCount*blockSize {
		return "", ErrMalformedKey
	}

	var sb strings.Builder
	sb.Grow(KeyLength)
	for i := 0; i < len(n); i += blockSize {
		if i > 0 {
			sb.WriteByte(separator)
		}
		sb.WriteString(n[i : i+blockSize])
	}

	key := sb.String()
	if !ValidKey(key) {
		return "", ErrMalformedKey
	}
	return key, nil
}
