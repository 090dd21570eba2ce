package main

import (
	"embed"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-template/templatehooks"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-admin/components/timezones"
	"github.com/goliatone/go-admin/pkg/admin"
	"github.com/goliatone/go-admin/pkg/fields"
	"github.com/goliatone/go-admin/pkg/forms"
	"github.com/goliatone/go-admin/pkg/themes"
	"github.com/goliatone/go-admin/pkg/views"
)

//go:embed templates/*.tpl
var templateFiles embed.FS

func demoTemplates() fs.FS {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

type contactForm struct {
	Name      string `form:"name" json:"name" validate:"required"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Topic     string `form:"topic" json:"topic" validate:"oneof=billing support other"`
	Message   string `form:"message" json:"message" validate:"required,max=2000"`
	TimeZone  string `form:"time_zone" json:"time_zone"`
	Subscribe bool   `form:"subscribe" json:"subscribe"`
}

var zones = timezones.New(timezones.WithView("timezones", "Time zones", "/tools/timezones"))

var contactModel = forms.MustModel[contactForm](
	forms.Field("name", fields.Text(fields.Label("Name"), fields.Required())),
	forms.Field("email", fields.Email(fields.Label("Email"), fields.Required(), fields.Placeholder("you@example.com"))),
	forms.Field("topic", fields.Select(fields.Label("Topic"), fields.Choices(
		fields.Choice("billing", "Billing"),
		fields.Choice("support", "Support"),
		fields.Choice("other", "Other"),
	))),
	forms.Field("message", fields.TextArea(fields.Label("Message"), fields.Rows(6), fields.Required())),
	forms.Field("time_zone", zones.MustField(fields.Label("Time zone"), fields.Placeholder("Pick a zone"))),
	forms.Field("subscribe", fields.Checkbox(fields.Label("Subscribe to the newsletter"))),
)

type echoForm struct {
	Text  string `form:"text" validate:"required"`
	Times int    `form:"times" validate:"min=1,max=10"`
}

var echoModel = forms.MustModel[echoForm](
	forms.Field("text", fields.Text(fields.Label("Text"), fields.Required())),
	forms.Field("times", fields.Number(fields.Label("Times"), fields.Value(1), fields.Min(1), fields.Max(10), fields.Step(1))),
)

type searchForm struct {
	Query string `form:"q" validate:"required"`
}

var searchModel = forms.MustModel[searchForm](
	forms.Field("q", fields.Text(fields.Label("Search the Go docs"), fields.Required())),
)

// demoViews returns the entries the demo panel registers after the index.
func demoViews() []views.Entry {
	contact := views.NewForm(views.FormSpec[contactForm]{
		Config: &views.Config{
			Name:             "contact",
			Title:            "Contact",
			Path:             "/contact",
			Icon:             "ti ti-mail",
			SubmitButtonText: "Send",
		},
		Model: contactModel,
		Post: func(ctx *views.RequestContext[contactForm]) (any, error) {
			return ctx.FormData()
		},
	})

	echo := views.NewForm(views.FormSpec[echoForm]{
		Config: &views.Config{Name: "echo", Title: "Echo", Path: "/tools/echo"},
		Model:  echoModel,
		Post: func(ctx *views.RequestContext[echoForm]) (any, error) {
			data, err := ctx.FormData()
			if err != nil {
				return nil, err
			}
			return views.AsJSONResponse{
				Response: map[string]any{"echo": strings.Repeat(data.Text, data.Times)},
				Message:  "Echoed",
			}, nil
		},
	})

	search := views.NewForm(views.FormSpec[searchForm]{
		Config: &views.Config{Name: "search", Title: "Search docs", Path: "/tools/search", SubmitButtonText: "Search"},
		Model:  searchModel,
		Post: func(ctx *views.RequestContext[searchForm]) (any, error) {
			data, err := ctx.FormData()
			if err != nil {
				return nil, err
			}
			return views.Redirect("https://pkg.go.dev/search?q="+url.QueryEscape(data.Query), http.StatusSeeOther), nil
		},
	})

	about := views.NewView(views.Spec{
		Config:   &views.Config{Name: "about", Title: "About", Path: "/about", Icon: `<svg viewBox="0 0 24 24" width="16" height="16"><circle cx="12" cy="12" r="9"></circle></svg>`},
		Template: "about.tpl",
	})

	return []views.Entry{
		contact,
		views.NewDropDown("Tools", "ti ti-tool", echo, search, zones.View()),
		about,
		views.NewLink("Go packages", "https://pkg.go.dev", views.LinkIcon("ti ti-external-link"), views.OpenInNewTab()),
	}
}

// demoThemes is the theme catalogue offered to the demo configuration.
func demoThemes() (*themes.Selector, error) {
	return themes.NewSelector(&theme.Manifest{
		Name:    "default",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":         "#1f6feb",
			"surface":       "#ffffff",
			"surface-muted": "#f6f8fa",
			"text":          "#1f2328",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand":         "#4493f8",
					"surface":       "#0d1117",
					"surface-muted": "#151b23",
					"text":          "#f0f6fc",
				},
			},
		},
	})
}

func buildAdmin(cfgOpts []admin.Option) (*admin.Admin, error) {
	selector, err := demoThemes()
	if err != nil {
		return nil, err
	}
	opts := append([]admin.Option{
		admin.WithTemplateFS(demoTemplates()),
		admin.WithTheme(selector, "", ""),
		admin.WithTemplatePostHooks(templatehooks.NewCommonHooks().RemoveTrailingWhitespaceHook()),
	}, cfgOpts...)

	b := admin.New(opts...)
	if err := b.AddViews(demoViews()...); err != nil {
		return nil, err
	}
	return b.Build()
}
