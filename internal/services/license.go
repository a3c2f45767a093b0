package services

import (
	"context"
	"crypto/ed25519"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/cheetahbyte/clavekey/internal/entropy"
	"github.com/cheetahbyte/clavekey/internal/handlers/dto"
	"github.com/cheetahbyte/clavekey/internal/licensecrypto"
	"schneider.vip/problem"
)

// ErrSigningDisabled is returned when a token is requested without a signing key.
var ErrSigningDisabled = errors.New("token signing disabled")

type LicenseService struct {
	secret     []byte
	signingKey ed25519.PrivateKey
	tokenTTL   time.Duration
	hashParams *argon2id.Params
	seed       func() (uint64, error)
}

func NewLicenseService(secret []byte, signingKey ed25519.PrivateKey, tokenTTL time.Duration) *LicenseService {
	return &LicenseService{
		secret:     secret,
		signingKey: signingKey,
		tokenTTL:   tokenTTL,
		hashParams: argon2id.DefaultParams,
		seed:       systemSeed,
	}
}

// systemSeed builds a fresh producer so no two keys share engine state.
func systemSeed() (uint64, error) {
	p, err := entropy.NewProducer()
	if err != nil {
		return 0, err
	}
	return p.Seed(), nil
}

func (svc *LicenseService) NewLicense(ctx context.Context, data dto.LicenseCreationRequest) (dto.LicenseCreationResponse, error) {
	instance := "/api/v1/keys"

	if data.TTLSeconds < 0 {
		return dto.LicenseCreationResponse{}, problem.Of(http.StatusBadRequest).
			Append(problem.Title("Invalid token TTL")).
			Append(problem.Detail("ttlSeconds must not be negative")).
			Append(problem.Instance(instance))
	}

	seed, err := svc.seed()
	if err != nil {
		slog.Error("failed to collect seed", "err", err.Error())
		return dto.LicenseCreationResponse{}, err
	}
	key := licensecrypto.GenerateKey(seed)

	hash, err := argon2id.CreateHash(key, svc.hashParams)
	if err != nil {
		slog.Error("failed to hash license key", "err", err.Error())
		return dto.LicenseCreationResponse{}, err
	}

	resp := dto.LicenseCreationResponse{
		LicenseKey:   key,
		LookupDigest: licensecrypto.LookupDigestHex(svc.secret, key),
		KeyPhc:       hash,
	}

	if svc.signingKey == nil {
		return resp, nil
	}

	ttl := svc.tokenTTL
	if data.TTLSeconds > 0 {
		ttl = time.Duration(data.TTLSeconds) * time.Second
	}
	signed, claims, err := svc.issueAndSignToken(key, data.Audience, data.Features, ttl)
	if err != nil {
		slog.Error("license token cannot be signed", "err", err.Error())
		return dto.LicenseCreationResponse{}, err
	}
	expires := claims.ExpiresAt.Time
	resp.Token = signed
	resp.TokenExpiresAt = &expires

	return resp, nil
}
