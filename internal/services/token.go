package services

import (
	"crypto/ed25519"
	"errors"
	"time"

	"github.com/cheetahbyte/clavekey/internal/licensecrypto"
	"github.com/golang-jwt/jwt/v5"
)

type LicenseClaims struct {
	KeyDigest string   `json:"key_digest"`
	Format    string   `json:"format"`
	Features  []string `json:"features,omitempty"`

	jwt.RegisteredClaims
}

const keyFormat = "5x5"

func (svc *LicenseService) issueAndSignToken(key, audience string, features []string, tokenTTL time.Duration) (string, *LicenseClaims, error) {
	if svc.signingKey == nil {
		return "", nil, ErrSigningDisabled
	}
	if len(svc.signingKey) != ed25519.PrivateKeySize {
		return "", nil, errors.New("invalid ed25519 private key size")
	}
	if tokenTTL <= 0 {
		return "", nil, errors.New("tokenTTL must be > 0")
	}

	now := time.Now().UTC()
	digest := licensecrypto.LookupDigestHex(svc.secret, key)

	claims := &LicenseClaims{
		KeyDigest: digest,
		Format:    keyFormat,
		Features:  features,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "key_" + digest[:16],
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-30 * time.Second)),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := tok.SignedString(svc.signingKey)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func parseJWT(token string, publicKey ed25519.PublicKey) (*LicenseClaims, error) {
	claims := &LicenseClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return publicKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if claims.Format != keyFormat {
		return nil, errors.New("unsupported key format")
	}
	return claims, nil
}
