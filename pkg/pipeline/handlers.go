package pipeline

import (
	"context"
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"github.com/quizforge/quizforge/pkg/asyncx"
	"github.com/quizforge/quizforge/pkg/logx"
)

// Handlers exposes the pipeline over HTTP.
type Handlers struct {
	service *Service
	secret  string
}

// NewHandlers builds the HTTP layer. secret is the shared secret callers
// must present.
func NewHandlers(service *Service, secret string) *Handlers {
	return &Handlers{service: service, secret: secret}
}

// RegisterRoutes mounts the pipeline routes on app.
func (h *Handlers) RegisterRoutes(app *fiber.App) {
	app.Post("/process-document", h.processDocument)
}

// processDocument authenticates the caller, kicks off processing in the
// background and acknowledges immediately. Results arrive via callback, not
// in this response.
func (h *Handlers) processDocument(c *fiber.Ctx) error {
	var req ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return pipelineErrors.NewWithCause(ErrInvalidRequest, err)
	}
	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.secret)) != 1 {
		return pipelineErrors.New(ErrUnauthorized)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	logx.WithFields(logx.Fields{
		"document_id": req.DocumentID,
		"file_path":   req.FilePath,
	}).Info("document processing requested")

	// The request context dies with this handler; the background run gets
	// its own.
	asyncx.Do(func() {
		h.service.Process(context.Background(), req.DocumentID, req.FilePath)
	})

	return c.JSON(fiber.Map{
		"message":     "Document processing initiated.",
		"document_id": req.DocumentID,
	})
}
