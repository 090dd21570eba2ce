package views

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
)

// Response is a fully formed HTTP response. Hooks returning one bypass
// template rendering.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// HTML builds an HTML response.
func HTML(status int, body string) *Response {
	header := make(http.Header)
	header.Set("Content-Type", contentTypeHTML)
	return &Response{Status: status, Header: header, Body: []byte(body)}
}

// Redirect builds a redirect to location. Status defaults to 303.
func Redirect(location string, status int) *Response {
	if status == 0 {
		status = http.StatusSeeOther
	}
	header := make(http.Header)
	header.Set("Location", location)
	return &Response{Status: status, Header: header}
}

// JSON builds a response carrying payload encoded as JSON.
func JSON(status int, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("views: encode json response: %w", err)
	}
	header := make(http.Header)
	header.Set("Content-Type", contentTypeJSON)
	return &Response{Status: status, Header: header, Body: body}, nil
}

// Write copies the response to w.
func (r *Response) Write(w http.ResponseWriter) error {
	for key, values := range r.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if len(r.Body) == 0 {
		return nil
	}
	_, err := w.Write(r.Body)
	return err
}

// AsJSONResponse asks a form view to expose Response to its template as
// json_result instead of result.
type AsJSONResponse struct {
	Response any    `json:"response"`
	Message  string `json:"message,omitempty"`
}

// Dump returns a copy whose Response is JSON compatible. Structured values
// (structs and pointers to structs) are replaced by their JSON projection;
// anything else passes through unchanged.
func (a AsJSONResponse) Dump() (AsJSONResponse, error) {
	if !IsStructured(a.Response) {
		return a, nil
	}
	projection, err := Project(a.Response)
	if err != nil {
		return AsJSONResponse{}, err
	}
	return AsJSONResponse{Response: projection, Message: a.Message}, nil
}

// IsStructured reports whether v is a struct or a non-nil pointer to one.
func IsStructured(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

// Project reduces v to its JSON projection: maps, slices and scalars.
func Project(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("views: project %T: %w", v, err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("views: project %T: %w", v, err)
	}
	return out, nil
}
