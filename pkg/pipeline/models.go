package pipeline

// Stage is where a job currently is in its strictly linear run.
type Stage string

const (
	StageQueued      Stage = "queued"
	StageDownloading Stage = "downloading"
	StageExtracting  Stage = "extracting"
	StageOCR         Stage = "ocr"
	StageGenerating  Stage = "generating"
	StageNotifying   Stage = "notifying"
	StageCompleted   Stage = "completed"
	StageFailed      Stage = "failed"
)

// Job is the mutable state of one processing run. It is created when a run
// starts, mutated only by the orchestrator, and discarded when the run
// reaches a terminal status.
type Job struct {
	ID        string
	Locator   string
	LocalPath string
	Stage     Stage
	Text      string
	Status    string
	// callbackDone records that the result callback landed; the failure
	// callback is suppressed after that point.
	callbackDone bool
}

// ProcessRequest is the body of the processing endpoint. The secret
// authenticates the caller; file_path locates the document in storage.
type ProcessRequest struct {
	Secret     string `json:"secret"`
	DocumentID string `json:"document_id"`
	FilePath   string `json:"file_path"`
}

// Validate checks the request has everything the pipeline needs.
func (r ProcessRequest) Validate() error {
	if r.DocumentID == "" {
		return pipelineErrors.New(ErrInvalidRequest).WithDetail("reason", "missing document_id")
	}
	if r.FilePath == "" {
		return pipelineErrors.New(ErrInvalidRequest).WithDetail("reason", "missing file_path")
	}
	return nil
}
