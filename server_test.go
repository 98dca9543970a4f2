package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeanalyzer/internal/analyzer"
)

func newTestEngine() *server.Hertz {
	h := server.Default()
	registerRoutes(h)
	return h
}

// multipartBody builds an /analyze request body. Empty filename skips
// the file part, empty jobDescription skips the form field.
func multipartBody(t *testing.T, filename, fileContent, jobDescription string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	if jobDescription != "" {
		require.NoError(t, writer.WriteField("job_description", jobDescription))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleAnalyze(t *testing.T) {
	h := newTestEngine()
	body, contentType := multipartBody(t, "resume.txt",
		"I used Python and worked with Docker.\n- Improved performance",
		"Looking for Python and Docker experience")

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)

	require.Equal(t, http.StatusOK, resp.Result().StatusCode())

	var result analyzer.Result
	require.NoError(t, json.Unmarshal(resp.Result().Body(), &result))
	assert.Contains(t, result.Keywords, "python")
	assert.Contains(t, result.Keywords, "docker")
	assert.InDelta(t, 50.0, result.ATSScore, 1e-9)
	assert.Equal(t, []string{"Consider quantifying this bullet: '- Improved performance'"}, result.Suggestions)
}

func TestHandleAnalyzeMissingFile(t *testing.T) {
	h := newTestEngine()
	body, contentType := multipartBody(t, "", "", "some job description")

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Result().StatusCode())
	assert.Contains(t, string(resp.Result().Body()), "file is required")
}

func TestHandleAnalyzeMissingJobDescription(t *testing.T) {
	h := newTestEngine()
	body, contentType := multipartBody(t, "resume.txt", "some resume text", "")

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)

	assert.Equal(t, http.StatusBadRequest, resp.Result().StatusCode())
	assert.Contains(t, string(resp.Result().Body()), "job_description is required")
}

func TestHandleAnalyzeCorruptPDFStillSucceeds(t *testing.T) {
	h := newTestEngine()
	body, contentType := multipartBody(t, "resume.pdf",
		"%PDF-1.4 definitely not a real pdf", "hiring golang engineers")

	resp := ut.PerformRequest(h.Engine, "POST", "/api/v1/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)

	// extraction degrades to the raw decode; the request never fails
	require.Equal(t, http.StatusOK, resp.Result().StatusCode())
	var result analyzer.Result
	require.NoError(t, json.Unmarshal(resp.Result().Body(), &result))
	assert.NotNil(t, result.Suggestions)
}

func TestHealth(t *testing.T) {
	h := newTestEngine()

	resp := ut.PerformRequest(h.Engine, "GET", "/api/v1/health", nil)

	assert.Equal(t, http.StatusOK, resp.Result().StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Result().Body()))
}
