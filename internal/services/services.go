package services

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/cheetahbyte/clavekey/internal/config"
)

type ServiceStack struct {
	license    *LicenseService
	validation *ValidationService
}

func InitServices(cfg config.Config) (ServiceStack, error) {
	pub, priv, err := decodeSigningKeys(cfg.JWTPublicKey, cfg.JWTPrivateKey)
	if err != nil {
		return ServiceStack{}, err
	}
	if priv == nil {
		slog.Warn("LICENSE_JWT_PRIVATE_KEY not set, issued keys carry no token")
	}

	secret := []byte(cfg.HMACSecret)
	if len(secret) == 0 {
		slog.Warn("LICENSE_HMAC_SECRET not set, lookup digests use an empty key")
	}

	license := NewLicenseService(secret, priv, cfg.TokenTTL)
	validation := NewValidationService(secret, pub)
	return ServiceStack{license: license, validation: validation}, nil
}

// decodeSigningKeys decodes base64 ed25519 keys. Both may be empty, which
// disables tokens. A lone private key implies its public half.
func decodeSigningKeys(publicKey, privateKey string) (ed25519.PublicKey, ed25519.PrivateKey, error) {
	var (
		pub  ed25519.PublicKey
		priv ed25519.PrivateKey
	)

	if privateKey != "" {
		pkBytes, err := base64.StdEncoding.DecodeString(privateKey)
		if err != nil {
			return nil, nil, fmt.Errorf("decode jwt private key: %w", err)
		}
		if len(pkBytes) != ed25519.PrivateKeySize {
			return nil, nil, fmt.Errorf("invalid ed25519 private key size %d", len(pkBytes))
		}
		priv = ed25519.PrivateKey(pkBytes)
		pub = priv.Public().(ed25519.PublicKey)
	}

	if publicKey != "" {
		pbBytes, err := base64.StdEncoding.DecodeString(publicKey)
		if err != nil {
			return nil, nil, fmt.Errorf("decode jwt public key: %w", err)
		}
		if len(pbBytes) != ed25519.PublicKeySize {
			return nil, nil, fmt.Errorf("invalid ed25519 public key size %d", len(pbBytes))
		}
		if pub != nil && !pub.Equal(ed25519.PublicKey(pbBytes)) {
			return nil, nil, fmt.Errorf("jwt public key does not match private key")
		}
		pub = ed25519.PublicKey(pbBytes)
	}

	return pub, priv, nil
}

func (s ServiceStack) License() *LicenseService { return s.license }

func (s ServiceStack) Validation() *ValidationService { return s.validation }
