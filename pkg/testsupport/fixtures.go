package testsupport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-admin/pkg/render/template"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// Upload is one file part of a MultipartRequest.
type Upload struct {
	Field    string
	Filename string
	Content  string
}

// MultipartRequest builds a multipart/form-data request carrying values and
// uploads.
func MultipartRequest(t *testing.T, method, target string, values url.Values, uploads ...Upload) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, vals := range values {
		for _, val := range vals {
			if err := writer.WriteField(key, val); err != nil {
				t.Fatalf("write field %s: %v", key, err)
			}
		}
	}
	for _, upload := range uploads {
		part, err := writer.CreateFormFile(upload.Field, upload.Filename)
		if err != nil {
			t.Fatalf("create file %s: %v", upload.Field, err)
		}
		if _, err := io.WriteString(part, upload.Content); err != nil {
			t.Fatalf("write file %s: %v", upload.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// FormRequest builds a form-encoded request for the supplied method and path.
func FormRequest(method, target string, values url.Values) *http.Request {
	var body io.Reader
	if values != nil {
		body = strings.NewReader(values.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if values != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return req
}

// RenderCall captures a single RenderTemplate invocation.
type RenderCall struct {
	Name string
	Data map[string]any
}

// RecordingRenderer is a template.TemplateRenderer that records calls instead
// of rendering. Output is the template name unless Output is set.
type RecordingRenderer struct {
	mu     sync.Mutex
	Output string
	Err    error
	calls  []RenderCall
	global map[string]any
}

var _ template.TemplateRenderer = (*RecordingRenderer)(nil)

// Render records the call.
func (r *RecordingRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

// RenderTemplate records the call.
func (r *RecordingRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payload, _ := data.(map[string]any)
	r.calls = append(r.calls, RenderCall{Name: name, Data: payload})
	if r.Err != nil {
		return "", r.Err
	}
	rendered := r.Output
	if rendered == "" {
		rendered = name
	}
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// RenderString is not supported by the recorder.
func (r *RecordingRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", errors.New("testsupport: RenderString not supported")
}

// RegisterFilter accepts and ignores filters.
func (r *RecordingRenderer) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

// GlobalContext records global values.
func (r *RecordingRenderer) GlobalContext(data any) error {
	values, ok := data.(map[string]any)
	if !ok {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.global == nil {
		r.global = make(map[string]any, len(values))
	}
	for key, value := range values {
		r.global[key] = value
	}
	return nil
}

// Calls returns a copy of the recorded calls.
func (r *RecordingRenderer) Calls() []RenderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RenderCall(nil), r.calls...)
}

// LastCall returns the latest call, failing the test when none was recorded.
func (r *RecordingRenderer) LastCall(t *testing.T) RenderCall {
	t.Helper()
	calls := r.Calls()
	if len(calls) == 0 {
		t.Fatalf("expected at least one render call")
	}
	return calls[len(calls)-1]
}

// Global returns a recorded global value.
func (r *RecordingRenderer) Global(key string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.global[key]
	return value, ok
}
