package dto

import "time"

type LicenseCreationRequest struct {
	Audience   string   `json:"audience,omitempty"`
	Features   []string `json:"features,omitempty"`
	TTLSeconds int64    `json:"ttlSeconds,omitempty"`
}

type LicenseCreationResponse struct {
	LicenseKey     string     `json:"licenseKey"`
	LookupDigest   string     `json:"lookupDigest"`
	KeyPhc         string     `json:"keyPhc"`
	Token          string     `json:"token,omitempty"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
}
