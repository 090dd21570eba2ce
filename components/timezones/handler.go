package timezones

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goliatone/go-admin/pkg/admin"
	"github.com/goliatone/go-admin/pkg/fields"
)

type optionsResponse struct {
	Data []fields.SelectOption `json:"data"`
}

// Handler serves zone choices as {"data": [{"value", "label"}]} for GET and
// HEAD requests.
func Handler(opts Options) http.Handler {
	opts = opts.normalized()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if err := guard(opts, r); err != nil {
			code := admin.StatusOf(err)
			http.Error(w, http.StatusText(code), code)
			return
		}

		zones, err := opts.zones()
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		query := r.URL.Query()
		results := SearchChoices(zones, query.Get(opts.SearchParam), parseInt(query.Get(opts.LimitParam)), opts)
		if results == nil {
			results = []fields.SelectOption{}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_ = json.NewEncoder(w).Encode(optionsResponse{Data: results})
	})
}

// guard runs the configured guard. Errors without a status become 403.
func guard(opts Options, r *http.Request) error {
	if opts.Guard == nil {
		return nil
	}
	err := opts.Guard(r)
	if err == nil {
		return nil
	}
	var httpErr admin.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	return admin.StatusError{Code: http.StatusForbidden, Err: err}
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
