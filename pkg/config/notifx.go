package config

import "time"

// NotifyConfig configures outbound progress and result notification.
type NotifyConfig struct {
	// Secret authenticates this service to the caller (and vice versa).
	Secret string

	// URL templates with a {document_id} placeholder.
	ProgressURLTemplate string
	CallbackURLTemplate string

	// Disabled suppresses all outbound notification (test mode).
	Disabled bool

	Attempts        int
	RetryDelay      time.Duration
	ProgressTimeout time.Duration
	ResultTimeout   time.Duration
}

func loadNotifyConfig() NotifyConfig {
	return NotifyConfig{
		Secret:              getEnv("SERVICE_SECRET", ""),
		ProgressURLTemplate: getEnv("PROGRESS_URL_TEMPLATE", "http://localhost:8000/api/documents/{document_id}/progress"),
		CallbackURLTemplate: getEnv("CALLBACK_URL_TEMPLATE", "http://localhost:8000/api/documents/{document_id}/questions"),
		Disabled:            getEnvBool("DISABLE_CALLBACKS", false),
		Attempts:            getEnvInt("NOTIFY_ATTEMPTS", 3),
		RetryDelay:          getEnvDuration("NOTIFY_RETRY_DELAY", 500*time.Millisecond),
		ProgressTimeout:     getEnvDuration("NOTIFY_PROGRESS_TIMEOUT", 10*time.Second),
		ResultTimeout:       getEnvDuration("NOTIFY_RESULT_TIMEOUT", 30*time.Second),
	}
}
