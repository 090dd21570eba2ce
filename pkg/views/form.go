package views

import (
	"fmt"
	"net/http"

	"github.com/goliatone/go-admin/pkg/fields"
	"github.com/goliatone/go-admin/pkg/forms"
	"github.com/goliatone/go-admin/pkg/render/template"
)

// DefaultFormTemplate is rendered by form views that name no template.
const DefaultFormTemplate = "form.tpl"

// Hook handles one method of a form view. The result is interpreted as
// follows:
//
//   - *Response is written as is;
//   - AsJSONResponse is dumped into the json_result template value;
//   - a struct or pointer to struct is projected into result;
//   - anything else renders the page with neither.
type Hook[T any] func(ctx *RequestContext[T]) (any, error)

// FieldsFunc computes the field descriptors rendered for a request.
type FieldsFunc func(r *http.Request) ([]fields.Descriptor, error)

// FormSpec declares a FormView.
type FormSpec[T any] struct {
	Config   *Config
	Template string
	Model    *forms.Model[T]
	Get      Hook[T]
	Post     Hook[T]
	Fields   FieldsFunc
}

// FormView is a view bound to a form model. GET and POST go to their hooks;
// POST bodies are parsed with the model before the hook runs.
type FormView[T any] struct {
	routable
	model    *forms.Model[T]
	fields   []fields.Descriptor
	get      Hook[T]
	post     Hook[T]
	fieldsFn FieldsFunc
}

var _ Routable = (*FormView[struct{}])(nil)

// NewForm builds a form view. The field list is taken from the model once;
// without a model it is empty.
func NewForm[T any](spec FormSpec[T]) *FormView[T] {
	tpl := spec.Template
	if tpl == "" {
		tpl = DefaultFormTemplate
	}
	view := &FormView[T]{
		routable: newRoutable(spec.Config, tpl),
		model:    spec.Model,
		fields:   spec.Model.Descriptors(),
		get:      spec.Get,
		post:     spec.Post,
		fieldsFn: spec.Fields,
	}
	if view.fields == nil {
		view.fields = []fields.Descriptor{}
	}
	if view.get == nil {
		view.get = defaultHook[T]
	}
	if view.post == nil {
		view.post = defaultHook[T]
	}
	return view
}

func defaultHook[T any](ctx *RequestContext[T]) (any, error) {
	return ctx.DefaultResponse()
}

// Kind implements Entry.
func (*FormView[T]) Kind() Kind { return KindFormView }

// Model returns the bound model, nil when none.
func (v *FormView[T]) Model() *forms.Model[T] { return v.model }

// FormFields returns the descriptors rendered for r.
func (v *FormView[T]) FormFields(r *http.Request) ([]fields.Descriptor, error) {
	if v.fieldsFn != nil {
		return v.fieldsFn(r)
	}
	out := make([]fields.Descriptor, len(v.fields))
	for i, desc := range v.fields {
		out[i] = desc.Clone()
	}
	return out, nil
}

// Handle dispatches r by method and renders the hook result.
func (v *FormView[T]) Handle(r *http.Request, templates template.TemplateRenderer) (*Response, error) {
	ctx := &RequestContext[T]{Request: r, Templates: templates, view: v}

	var (
		result any
		err    error
	)
	switch r.Method {
	case http.MethodGet:
		result, err = v.get(ctx)
	case http.MethodPost:
		if v.model != nil {
			data, perr := v.model.ParseRequest(r)
			if perr != nil {
				return nil, perr
			}
			ctx.formData = &data
		}
		result, err = v.post(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedMethod, r.Method)
	}
	if err != nil {
		return nil, err
	}

	if resp, ok := result.(*Response); ok && resp != nil {
		return resp, nil
	}
	values, err := interpretResult(result)
	if err != nil {
		return nil, err
	}
	return v.render(ctx, values)
}

type resultValues struct {
	result     any
	jsonResult any
}

func interpretResult(result any) (resultValues, error) {
	var dumped AsJSONResponse
	switch res := result.(type) {
	case AsJSONResponse:
		dumped = res
	case *AsJSONResponse:
		if res == nil {
			return resultValues{}, nil
		}
		dumped = *res
	default:
		if !IsStructured(result) {
			return resultValues{}, nil
		}
		projection, err := Project(result)
		if err != nil {
			return resultValues{}, err
		}
		return resultValues{result: projection}, nil
	}

	out, err := dumped.Dump()
	if err != nil {
		return resultValues{}, err
	}
	return resultValues{jsonResult: map[string]any{
		"response": out.Response,
		"message":  out.Message,
	}}, nil
}

func (v *FormView[T]) render(ctx *RequestContext[T], values resultValues) (*Response, error) {
	formFields, err := v.FormFields(ctx.Request)
	if err != nil {
		return nil, fmt.Errorf("views: form fields: %w", err)
	}
	return renderPage(ctx.Templates, v.template, map[string]any{
		"request":     RequestInfo(ctx.Request),
		"view":        Describe(v),
		"result":      values.result,
		"json_result": values.jsonResult,
		"form_fields": formFields,
	})
}

// RequestContext is handed to form view hooks for one request.
type RequestContext[T any] struct {
	Request   *http.Request
	Templates template.TemplateRenderer

	formData *T
	view     *FormView[T]
}

// FormData returns the parsed submission. It fails with ErrMissingValue on
// GET requests and on views without a model.
func (c *RequestContext[T]) FormData() (T, error) {
	return Value(c.formData, "form data")
}

// MustFormData is FormData that panics on a missing value.
func (c *RequestContext[T]) MustFormData() T {
	data, err := c.FormData()
	if err != nil {
		panic(err)
	}
	return data
}

// DefaultResponse renders the view page with its fields and no result.
func (c *RequestContext[T]) DefaultResponse() (*Response, error) {
	if c.view == nil {
		return nil, fmt.Errorf("%w: form view", ErrMissingValue)
	}
	return c.view.render(c, resultValues{})
}
