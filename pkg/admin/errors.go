package admin

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goliatone/go-admin/pkg/forms"
	"github.com/goliatone/go-admin/pkg/views"
)

var (
	ErrMissingConfig   = errors.New("admin: view has no config")
	ErrPathReserved    = errors.New("admin: path already reserved")
	ErrNameReserved    = errors.New("admin: name already reserved")
	ErrMissingTemplate = errors.New("admin: view has no template")
	ErrNestedDropDown  = errors.New("admin: dropdowns cannot be nested")
	ErrFrozen          = errors.New("admin: builder already built")
	ErrUnknownView     = errors.New("admin: unknown view")
)

// ConfigError reports an entry rejected by AddView. Err is one of the
// sentinel errors above.
type ConfigError struct {
	View string
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	switch {
	case e.View != "" && e.Path != "":
		return fmt.Sprintf("%v (view %q, path %q)", e.Err, e.View, e.Path)
	case e.View != "":
		return fmt.Sprintf("%v (view %q)", e.Err, e.View)
	default:
		return e.Err.Error()
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

// HTTPError is an error that carries its response status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError attaches an HTTP status to an error returned from a hook.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode())
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// StatusOf maps a handler error to the response status.
func StatusOf(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		return httpErr.StatusCode()
	}
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, views.ErrUnexpectedMethod) {
		return http.StatusMethodNotAllowed
	}
	return http.StatusInternalServerError
}
