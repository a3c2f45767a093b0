package licensecrypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// LookupDigest is an HMAC-SHA256 of the normalized key, so differently
// typed forms of one key share a digest.
func LookupDigest(secret []byte, licenseKey string) []byte {
	n := NormalizeKey(licenseKey)

	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(n))
	return mac.Sum(nil)
}

func LookupDigestHex(secret []byte, licenseKey string) string {
	return hex.EncodeToString(LookupDigest(secret, licenseKey))
}

// DigestEqual compares a hex digest against the key's digest in constant time.
func DigestEqual(secret []byte, licenseKey, digestHex string) bool {
	want, err := hex.DecodeString(digestHex)
	if err != nil {
		return false
	}
	return hmac.Equal(want, LookupDigest(secret, licenseKey))
}
