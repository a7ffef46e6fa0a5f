package config

import "time"

// RemoteOCRProvider holds the endpoint and credential of one remote OCR
// backend. A provider missing either is disabled and skipped by the chain.
type RemoteOCRProvider struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Configured reports whether the provider has everything it needs to be used.
func (p RemoteOCRProvider) Configured() bool {
	return p.URL != "" && p.APIKey != ""
}

// OCRConfig configures the OCR provider chain.
type OCRConfig struct {
	// Chain overrides the default provider order when non-empty.
	Chain []string

	// TesseractPath points at the local OCR binary; empty means PATH lookup.
	TesseractPath string

	// OCRSpaceAPIKey enables the ocr.space provider. Its endpoint is fixed.
	OCRSpaceAPIKey  string
	OCRSpaceTimeout time.Duration
	// OCRSpaceMaxBytes is the upload limit of the ocr.space free tier.
	OCRSpaceMaxBytes int64

	T3xtr    RemoteOCRProvider
	APDF     RemoteOCRProvider
	TextMill RemoteOCRProvider
	Zamzar   RemoteOCRProvider
}

func loadOCRConfig() OCRConfig {
	return OCRConfig{
		Chain:            getEnvStringSlice("OCR_CHAIN", nil),
		TesseractPath:    getEnv("TESSERACT_PATH", ""),
		OCRSpaceAPIKey:   getEnv("OCRSPACE_API_KEY", ""),
		OCRSpaceTimeout:  getEnvDuration("OCRSPACE_TIMEOUT", 90*time.Second),
		OCRSpaceMaxBytes: getEnvInt64("OCRSPACE_MAX_BYTES", 5*1024*1024),
		T3xtr: RemoteOCRProvider{
			URL:     getEnv("T3XTR_API_URL", ""),
			APIKey:  getEnv("T3XTR_API_KEY", ""),
			Timeout: getEnvDuration("T3XTR_TIMEOUT", 60*time.Second),
		},
		APDF: RemoteOCRProvider{
			URL:     getEnv("APDF_API_URL", ""),
			APIKey:  getEnv("APDF_API_KEY", ""),
			Timeout: getEnvDuration("APDF_TIMEOUT", 60*time.Second),
		},
		TextMill: RemoteOCRProvider{
			URL:     getEnv("TEXTMILL_API_URL", ""),
			APIKey:  getEnv("TEXTMILL_API_KEY", ""),
			Timeout: getEnvDuration("TEXTMILL_TIMEOUT", 60*time.Second),
		},
		Zamzar: RemoteOCRProvider{
			URL:     getEnv("ZAMZAR_API_URL", ""),
			APIKey:  getEnv("ZAMZAR_API_KEY", ""),
			Timeout: getEnvDuration("ZAMZAR_TIMEOUT", 60*time.Second),
		},
	}
}
