package dto

type LicenseValidationRequest struct {
	LicenseKey string `json:"licenseKey"`
	KeyPhc     string `json:"keyPhc,omitempty"`
	Token      string `json:"token,omitempty"`
}

type LicenseValidationResponse struct {
	Valid      bool     `json:"valid"`
	LicenseKey string   `json:"licenseKey"`
	Features   []string `json:"features,omitempty"`
}
