package forms

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/goliatone/go-admin/pkg/fields"
)

// DefaultMaxMemory bounds the in-memory part of multipart submissions.
const DefaultMaxMemory = 32 << 20

// FieldSpec binds a field declaration to the form attribute it describes.
type FieldSpec struct {
	Name string
	Decl fields.Decl
}

// Field is shorthand for a FieldSpec.
func Field(name string, decl fields.Decl) FieldSpec {
	return FieldSpec{Name: name, Decl: decl}
}

// Files holds uploaded files keyed by form field name.
type Files map[string][]*multipart.FileHeader

// Parser turns submitted form values and uploaded files into a typed value
// or fails. files is nil for url-encoded submissions.
type Parser[T any] func(values url.Values, files Files) (T, error)

// Model binds an ordered list of field declarations to the Go type T that
// submissions are parsed into. Models are immutable once built.
type Model[T any] struct {
	descriptors []fields.Descriptor
	parse       Parser[T]
	maxMemory   int64
}

// NewModel builds a model from explicit field declarations. The descriptor
// order is the declaration order. T must be a struct; every name must be
// unique and match a `form` key of T (the field name when untagged), so a
// rendered input always decodes into T.
func NewModel[T any](specs ...FieldSpec) (*Model[T], error) {
	target := reflect.TypeOf((*T)(nil)).Elem()
	if target.Kind() != reflect.Struct {
		return nil, fmt.Errorf("forms: model type %s is not a struct", target)
	}
	seen := make(map[string]struct{}, len(specs))
	descriptors := make([]fields.Descriptor, 0, len(specs))
	for i, spec := range specs {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return nil, fmt.Errorf("forms: field %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("forms: field %q declared twice", name)
		}
		if !hasFormKey(target, name) {
			return nil, fmt.Errorf("forms: field %q matches no %q key of %s", name, TagName, target)
		}
		seen[name] = struct{}{}
		descriptors = append(descriptors, fields.Describe(name, spec.Decl))
	}

	return &Model[T]{
		descriptors: descriptors,
		parse:       DecodeSubmission[T],
		maxMemory:   DefaultMaxMemory,
	}, nil
}

// MustModel is NewModel that panics on invalid declarations. Useful for
// package level form definitions.
func MustModel[T any](specs ...FieldSpec) *Model[T] {
	model, err := NewModel[T](specs...)
	if err != nil {
		panic(err)
	}
	return model
}

// WithParser returns a copy of the model using parse for submissions.
func (m *Model[T]) WithParser(parse Parser[T]) *Model[T] {
	clone := *m
	if parse != nil {
		clone.parse = parse
	}
	return &clone
}

// WithMaxMemory returns a copy of the model with a different multipart
// memory bound.
func (m *Model[T]) WithMaxMemory(size int64) *Model[T] {
	clone := *m
	if size > 0 {
		clone.maxMemory = size
	}
	return &clone
}

// Descriptors returns the ordered field descriptors. The slice and every
// descriptor in it are copies.
func (m *Model[T]) Descriptors() []fields.Descriptor {
	if m == nil {
		return nil
	}
	out := make([]fields.Descriptor, len(m.descriptors))
	for i, desc := range m.descriptors {
		out[i] = desc.Clone()
	}
	return out
}

// Parse converts values into T.
func (m *Model[T]) Parse(values url.Values) (T, error) {
	return m.parse(values, nil)
}

// ParseMultipart converts values and uploaded files into T.
func (m *Model[T]) ParseMultipart(values url.Values, files Files) (T, error) {
	return m.parse(values, files)
}

// ParseRequest reads the request body form, multipart aware, and parses it.
func (m *Model[T]) ParseRequest(r *http.Request) (T, error) {
	var zero T
	if r == nil {
		return zero, errors.New("forms: request is nil")
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(m.maxMemory); err != nil {
			return zero, fmt.Errorf("forms: read multipart form: %w", err)
		}
		return m.parse(r.PostForm, Files(r.MultipartForm.File))
	}
	if err := r.ParseForm(); err != nil {
		return zero, fmt.Errorf("forms: read form: %w", err)
	}
	return m.parse(r.PostForm, nil)
}
