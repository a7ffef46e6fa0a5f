// Package ocrxremote holds the HTTP-backed OCR providers: the ocr.space
// engine, a family of bearer-token extraction services, and a
// document-conversion fallback for word-processor files.
package ocrxremote

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// postFile uploads path as a multipart form to url and returns the response.
// extraFields are added as plain form values; headers are set verbatim.
func postFile(ctx context.Context, client *http.Client, url, fieldName, path string, extraFields, headers map[string]string) (*http.Response, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, remoteErrors.NewWithCause(ErrRequestFailed, err)
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(fieldName, filepath.Base(path))
	if err != nil {
		return nil, remoteErrors.NewWithCause(ErrRequestFailed, err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, remoteErrors.NewWithCause(ErrRequestFailed, err)
	}
	for k, v := range extraFields {
		if err := w.WriteField(k, v); err != nil {
			return nil, remoteErrors.NewWithCause(ErrRequestFailed, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, remoteErrors.NewWithCause(ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, remoteErrors.NewWithCause(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, remoteErrors.NewWithCause(ErrRequestFailed, err)
	}
	return resp, nil
}

// readBody drains and closes the response body.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, remoteErrors.NewWithCause(ErrBadResponse, err)
	}
	return data, nil
}

// textFromJSON scans a decoded JSON object for the usual places extraction
// services put their text. Checks top-level keys first, then one level of
// nesting under each.
func textFromJSON(m map[string]any, keys []string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case map[string]any:
			for _, kk := range []string{"text", "content"} {
				if s, ok := v[kk].(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}
