package services

import (
	"context"
	"crypto/ed25519"
	"net/http"

	"github.com/alexedwards/argon2id"
	"github.com/cheetahbyte/clavekey/internal/handlers/dto"
	"github.com/cheetahbyte/clavekey/internal/licensecrypto"
	"schneider.vip/problem"
)

type ValidationService struct {
	secret    []byte
	publicKey ed25519.PublicKey
}

func NewValidationService(secret []byte, publicKey ed25519.PublicKey) *ValidationService {
	return &ValidationService{
		secret:    secret,
		publicKey: publicKey,
	}
}

func (svc *ValidationService) Validate(ctx context.Context, data dto.LicenseValidationRequest) (dto.LicenseValidationResponse, error) {
	instance := "/api/v1/keys/validate"

	key, err := licensecrypto.ParseKey(data.LicenseKey)
	if err != nil {
		return dto.LicenseValidationResponse{}, problem.Of(http.StatusBadRequest).
			Append(problem.Title("Malformed license key")).
			Append(problem.Instance(instance))
	}

	if data.KeyPhc == "" && data.Token == "" {
		return dto.LicenseValidationResponse{}, problem.Of(http.StatusBadRequest).
			Append(problem.Title("Nothing to verify")).
			Append(problem.Detail("keyPhc or token is required")).
			Append(problem.Instance(instance))
	}

	if data.KeyPhc != "" {
		match, err := argon2id.ComparePasswordAndHash(key, data.KeyPhc)
		if err != nil {
			return dto.LicenseValidationResponse{}, problem.Of(http.StatusBadRequest).
				Append(problem.Title("Invalid key hash")).
				Append(problem.Detail(err.Error())).
				Append(problem.Instance(instance))
		}
		if !match {
			return dto.LicenseValidationResponse{}, problem.Of(http.StatusForbidden).
				Append(problem.Title("License key mismatch")).
				Append(problem.Instance(instance))
		}
	}

	resp := dto.LicenseValidationResponse{Valid: true, LicenseKey: key}
	if data.Token == "" {
		return resp, nil
	}

	if svc.publicKey == nil {
		return dto.LicenseValidationResponse{}, problem.Of(http.StatusNotImplemented).
			Append(problem.Title("Token validation disabled")).
			Append(problem.Instance(instance))
	}

	claims, err := parseJWT(data.Token, svc.publicKey)
	if err != nil {
		return dto.LicenseValidationResponse{}, problem.Of(http.StatusUnauthorized).
			Append(problem.Title("Invalid token")).
			Append(problem.Instance(instance))
	}

	if !licensecrypto.DigestEqual(svc.secret, key, claims.KeyDigest) {
		return dto.LicenseValidationResponse{}, problem.Of(http.StatusForbidden).
			Append(problem.Title("Token does not match key")).
			Append(problem.Instance(instance))
	}

	resp.Features = claims.Features
	return resp, nil
}
