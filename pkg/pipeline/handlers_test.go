package pipeline_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/quizforge/quizforge/pkg/errx"
	"github.com/quizforge/quizforge/pkg/pipeline"
)

func newTestApp() (*fiber.App, *recordingNotifier) {
	storage := &fakeStorage{files: map[string][]byte{"docs/report.pdf": []byte("%PDF")}}
	notifier := &recordingNotifier{}
	svc := pipeline.New(storage, &fakeExtractor{text: "text"}, &fakeRecognizer{}, &fakeGenerator{questions: sampleQuestions()}, notifier, "")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var appErr *errx.Error
			if errx.As(err, &appErr) {
				return c.Status(appErr.HTTPStatus).JSON(appErr)
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	pipeline.NewHandlers(svc, "topsecret").RegisterRoutes(app)
	return app, notifier
}

func postJSON(t *testing.T, app *fiber.App, body any) int {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", "/process-document", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestProcessDocument_RejectsWrongSecret(t *testing.T) {
	app, _ := newTestApp()
	status := postJSON(t, app, pipeline.ProcessRequest{
		Secret:     "wrong",
		DocumentID: "doc-1",
		FilePath:   "docs/report.pdf",
	})
	if status != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", status)
	}
}

func TestProcessDocument_RejectsMissingFields(t *testing.T) {
	app, _ := newTestApp()
	status := postJSON(t, app, pipeline.ProcessRequest{
		Secret: "topsecret",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestProcessDocument_AcknowledgesImmediately(t *testing.T) {
	app, _ := newTestApp()
	status := postJSON(t, app, pipeline.ProcessRequest{
		Secret:     "topsecret",
		DocumentID: "doc-1",
		FilePath:   "docs/report.pdf",
	})
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}
