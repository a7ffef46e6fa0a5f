package config

// StorageConfig configures the document storage collaborator.
type StorageConfig struct {
	Mode          string // "local" or "s3"
	LocalBasePath string
	AWSRegion     string
	AWSBucket     string
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Mode:          getEnv("STORAGE_MODE", "local"),
		LocalBasePath: getEnv("STORAGE_LOCAL_PATH", "./storage/app"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		AWSBucket:     getEnv("AWS_BUCKET", "quizforge-documents"),
	}
}
