// Package pipeline orchestrates document processing end to end: download,
// text extraction, OCR escalation, question generation and the result
// callback. Every run reports progress along the way and cleans up its
// working copy no matter how it ends.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quizforge/quizforge/pkg/extract"
	"github.com/quizforge/quizforge/pkg/fsx"
	"github.com/quizforge/quizforge/pkg/genx"
	"github.com/quizforge/quizforge/pkg/logx"
	"github.com/quizforge/quizforge/pkg/notifx"
	"github.com/quizforge/quizforge/pkg/ocrx"
)

// limitedMarker is the placeholder some extractors emit when they can only
// partially read a document. It is never usable generation input.
const limitedMarker = "Limited extraction available; OCR not installed."

// TextExtractor pulls text straight out of a document when the format
// carries any. Satisfied by extract.Extractor.
type TextExtractor interface {
	Extract(ctx context.Context, path string, format extract.Format) (string, error)
}

// Recognizer is the OCR escalation stage. Satisfied by ocrx.Chain.
type Recognizer interface {
	Recognize(ctx context.Context, in ocrx.Input) string
}

// QuestionGenerator produces the question batch. Satisfied by genx.Chain.
type QuestionGenerator interface {
	Generate(ctx context.Context, content string) ([]genx.Question, error)
}

// Service runs the processing pipeline.
type Service struct {
	storage   fsx.FileReader
	extractor TextExtractor
	ocr       Recognizer
	questions QuestionGenerator
	notifier  notifx.Notifier
	tempDir   string
}

// New wires the pipeline stages together. tempDir is where working copies
// of documents are written; empty means the system default.
func New(storage fsx.FileReader, extractor TextExtractor, ocr Recognizer, questions QuestionGenerator, notifier notifx.Notifier, tempDir string) *Service {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Service{
		storage:   storage,
		extractor: extractor,
		ocr:       ocr,
		questions: questions,
		notifier:  notifier,
		tempDir:   tempDir,
	}
}

// Process runs the full pipeline for one document. It never returns an
// error to its caller: all outcomes, success or failure, are reported
// through the notifier. Intended to run in the background after the request
// is acknowledged.
func (s *Service) Process(ctx context.Context, documentID, filePath string) {
	log := logx.WithFields(logx.Fields{"document_id": documentID, "file_path": filePath})
	job := &Job{
		ID:        documentID,
		Locator:   filePath,
		LocalPath: filepath.Join(s.tempDir, fmt.Sprintf("%s_%s", documentID, filepath.Base(filePath))),
		Stage:     StageQueued,
		Status:    notifx.StatusProcessing,
	}

	defer s.cleanup(job.LocalPath)
	defer func() {
		if rec := recover(); rec != nil {
			log.WithFields(logx.Fields{"panic": rec, "stage": job.Stage}).Error("pipeline panicked")
			s.fail(ctx, job, fmt.Sprintf("%v", rec))
		}
	}()

	s.progress(ctx, job.ID, 10, "Queued", 40)

	job.Stage = StageDownloading
	if err := s.download(ctx, job.Locator, job.LocalPath); err != nil {
		log.WithError(err).Error("document download failed")
		s.fail(ctx, job, err.Error())
		return
	}
	if fi, err := os.Stat(job.LocalPath); err == nil {
		s.progress(ctx, job.ID, 25, fmt.Sprintf("Downloading file bytes=%d", fi.Size()), 30)
	} else {
		s.progress(ctx, job.ID, 25, "Downloading file", 30)
	}

	format := extract.DetectFormat(job.Locator)

	job.Stage = StageExtracting
	text, err := s.extractor.Extract(ctx, job.LocalPath, format)
	if err != nil {
		log.WithError(err).Error("text extraction failed")
		s.fail(ctx, job, friendlyMessage(err.Error()))
		return
	}
	s.progress(ctx, job.ID, 55, "Extracting text", 20)
	s.progress(ctx, job.ID, 58, fmt.Sprintf("Extracted text len=%d", len(text)), 18)

	if strings.TrimSpace(text) == "" {
		job.Stage = StageOCR
		s.progress(ctx, job.ID, 60, "No text found, attempting OCR", 20)
		text = s.ocr.Recognize(ctx, ocrx.Input{Path: job.LocalPath, Format: format})
		s.progress(ctx, job.ID, 80, fmt.Sprintf("OCR text len=%d", len(text)), 8)
	}

	if strings.TrimSpace(text) == "" {
		err := pipelineErrors.New(ErrNoText)
		log.Error(err.Error())
		s.fail(ctx, job, err.Error())
		return
	}
	if strings.TrimSpace(text) == limitedMarker {
		err := pipelineErrors.New(ErrNoUsableText)
		log.Error(err.Error())
		s.fail(ctx, job, err.Error())
		return
	}
	job.Text = text

	job.Stage = StageGenerating
	s.progress(ctx, job.ID, 85, "Generating questions", 10)
	questions, err := s.questions.Generate(ctx, job.Text)
	if err != nil {
		log.WithError(err).Error("question generation failed")
		s.fail(ctx, job, err.Error())
		return
	}
	s.progress(ctx, job.ID, 95, "Questions generated", 5)

	job.Stage = StageNotifying
	if err := s.notifier.SendResult(ctx, job.ID, questions); err != nil {
		log.WithError(err).Error("result callback failed")
		s.fail(ctx, job, err.Error())
		return
	}
	job.callbackDone = true
	job.Stage = StageCompleted
	job.Status = notifx.StatusCompleted

	s.progress(ctx, job.ID, 100, "Completed", 0, notifx.StatusCompleted)
	log.WithField("questions", len(questions)).Info("document processed")
}

func (s *Service) download(ctx context.Context, filePath, localPath string) error {
	data, err := s.storage.ReadFile(ctx, filePath)
	if err != nil {
		return pipelineErrors.NewWithCause(ErrDownloadFailed, err).WithDetail("path", filePath)
	}
	if err := os.WriteFile(localPath, data, 0o600); err != nil {
		return pipelineErrors.NewWithCause(ErrDownloadFailed, err)
	}
	return nil
}

// fail reports a terminal failure. The failure callback is attempted only
// when the result callback has not already landed; both the callback and the
// final progress event are best effort.
func (s *Service) fail(ctx context.Context, job *Job, message string) {
	job.Status = notifx.StatusFailed
	diag := fmt.Sprintf(" stage=%s text_len=%d path=%s", job.Stage, len(job.Text), job.Locator)
	if !job.callbackDone {
		if err := s.notifier.SendFailure(ctx, job.ID, message+diag); err != nil {
			logx.WithError(err).WithField("document_id", job.ID).Warn("failure callback not delivered")
		}
	}
	s.progress(ctx, job.ID, 100, "Failed", 0, notifx.StatusFailed)
}

func (s *Service) progress(ctx context.Context, documentID string, percent int, message string, eta int, status ...string) {
	st := notifx.StatusProcessing
	if len(status) > 0 {
		st = status[0]
	}
	s.notifier.SendProgress(ctx, documentID, notifx.ProgressEvent{
		Percent:    percent,
		Message:    message,
		ETASeconds: eta,
		Status:     st,
	})
}

func (s *Service) cleanup(localPath string) {
	if _, err := os.Stat(localPath); err != nil {
		return
	}
	if err := os.Remove(localPath); err != nil {
		logx.WithError(err).WithField("path", localPath).Warn("could not remove working copy")
		return
	}
	logx.WithField("path", localPath).Debug("working copy removed")
}

// friendlyMessage rewrites parser internals into something a user can act on.
func friendlyMessage(msg string) string {
	if strings.Contains(msg, "Stream has ended unexpectedly") {
		return "PDF appears corrupted or has invalid streams. Try another file or a rescanned PDF."
	}
	return msg
}
