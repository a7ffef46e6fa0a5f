package config

import "os"

// PipelineConfig configures the processing pipeline itself.
type PipelineConfig struct {
	// MinDirectTextChars is the usefulness threshold for direct PDF
	// extraction; shorter results trigger the alternate parser.
	MinDirectTextChars int

	// TempDir is where the local working copy of a document is placed.
	TempDir string
}

func loadPipelineConfig() PipelineConfig {
	return PipelineConfig{
		MinDirectTextChars: getEnvInt("PIPELINE_MIN_DIRECT_TEXT_CHARS", 80),
		TempDir:            getEnv("PIPELINE_TEMP_DIR", os.TempDir()),
	}
}
