package timezones

import (
	"github.com/goliatone/go-admin/pkg/fields"
	"github.com/goliatone/go-admin/pkg/forms"
	"github.com/goliatone/go-admin/pkg/views"
)

// Query is the search form submission.
type Query struct {
	Q     string `form:"q"`
	Limit int    `form:"limit" validate:"min=0"`
}

// Result is what the search view renders after a submission.
type Result struct {
	Query   string   `json:"query"`
	Count   int      `json:"count"`
	Matches []string `json:"matches"`
}

// NewView returns a form view searching the zone list.
func NewView(opts Options) *views.FormView[Query] {
	opts = opts.normalized()
	model := forms.MustModel[Query](
		forms.Field("q", fields.Text(fields.Label("Zone"), fields.Placeholder("Europe/"))),
		forms.Field("limit", fields.Number(
			fields.Label("Limit"),
			fields.Value(opts.DefaultLimit),
			fields.Min(0),
			fields.Max(float64(opts.MaxLimit)),
		)),
	)

	return views.NewForm(views.FormSpec[Query]{
		Config: &views.Config{
			Name:             opts.ViewName,
			Title:            opts.ViewTitle,
			Path:             opts.ViewPath,
			Icon:             "ti ti-world",
			SubmitButtonText: "Search",
		},
		Model: model,
		Post: func(ctx *views.RequestContext[Query]) (any, error) {
			if err := guard(opts, ctx.Request); err != nil {
				return nil, err
			}
			query, err := ctx.FormData()
			if err != nil {
				return nil, err
			}
			zones, err := opts.zones()
			if err != nil {
				return nil, err
			}
			matches := Search(zones, query.Q, query.Limit, opts)
			if matches == nil {
				matches = []string{}
			}
			return Result{Query: query.Q, Count: len(matches), Matches: matches}, nil
		},
	})
}
