package admin

import (
	"errors"
	"net/http"

	"github.com/goliatone/go-admin/pkg/forms"
	"github.com/goliatone/go-admin/pkg/ui"
	"github.com/goliatone/go-admin/pkg/views"
)

// ErrorHandler writes the response for an error returned by a view.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// defaultErrorHandler renders the error template with the status from
// StatusOf, falling back to plain text when rendering fails. Internal error
// messages are only shown in debug mode.
func (a *Admin) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		a.logger.Errorw("admin view failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	} else {
		a.logger.Warnw("admin view rejected request", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}

	message := http.StatusText(status)
	if status < http.StatusInternalServerError || a.debug {
		message = err.Error()
	}

	data := map[string]any{
		"request":     views.RequestInfo(r),
		"status":      status,
		"status_text": http.StatusText(status),
		"message":     message,
	}
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		data["message"] = "The submitted form is invalid."
		data["errors"] = verr.Fields
	}

	if status == http.StatusMethodNotAllowed {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
	}

	body, renderErr := a.templates.RenderTemplate(ui.ErrorTemplate, data)
	if renderErr != nil {
		a.logger.Errorw("admin render error page failed", "error", renderErr)
		http.Error(w, message, status)
		return
	}
	resp := views.HTML(status, body)
	if err := resp.Write(w); err != nil {
		a.logger.Warnw("admin write error page failed", "error", err)
	}
}
