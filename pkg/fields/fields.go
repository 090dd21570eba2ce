package fields

import "fmt"

// Kind tags the input variant of a declaration.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPassword Kind = "password"
	KindNumber   Kind = "number"
	KindSelect   Kind = "select"
	KindTextArea Kind = "textarea"
	KindCheckbox Kind = "checkbox"
	KindHidden   Kind = "hidden"
	KindFile     Kind = "file"
)

// DefaultGridItemTemplate renders a value inside a data grid for every kind
// unless overridden.
const DefaultGridItemTemplate = "datagrid/default_item.tpl"

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindText, KindEmail, KindPassword, KindNumber, KindSelect,
		KindTextArea, KindCheckbox, KindHidden, KindFile,
	}
}

// DefaultFormTemplate returns the built-in form template for kind.
func DefaultFormTemplate(kind Kind) string {
	switch kind {
	case KindText:
		return "form_fields/input.tpl"
	case KindEmail, KindPassword, KindNumber, KindSelect, KindTextArea,
		KindCheckbox, KindHidden, KindFile:
		return "form_fields/" + string(kind) + ".tpl"
	default:
		panic(fmt.Sprintf("fields: unknown kind %q", kind))
	}
}

// SelectOption is a single choice of a select input.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Decl is the immutable declaration of one form input. Attributes that do not
// belong to Kind are always zero.
type Decl struct {
	Kind             Kind   `json:"type"`
	Label            string `json:"label,omitempty"`
	Value            any    `json:"value,omitempty"`
	Required         bool   `json:"required"`
	Placeholder      string `json:"placeholder,omitempty"`
	HelpText         string `json:"help_text,omitempty"`
	Error            string `json:"error,omitempty"`
	Readonly         bool   `json:"readonly"`
	FormTemplate     string `json:"form_template"`
	GridItemTemplate string `json:"grid_item_template"`

	// number
	Min  *float64 `json:"min_value,omitempty"`
	Max  *float64 `json:"max_value,omitempty"`
	Step *float64 `json:"step,omitempty"`

	// select
	Options []SelectOption `json:"options,omitempty"`

	// textarea
	Rows *int `json:"rows,omitempty"`
	Cols *int `json:"cols,omitempty"`

	// checkbox
	Disabled bool `json:"disabled,omitempty"`

	// file
	Accept   string `json:"accept,omitempty"`
	Multiple bool   `json:"multiple,omitempty"`
}

// Option customises a declaration during construction.
type Option func(*Decl)

// Label sets the visible label.
func Label(label string) Option { return func(d *Decl) { d.Label = label } }

// Value sets the initial value.
func Value(value any) Option { return func(d *Decl) { d.Value = value } }

// Required marks the input as required.
func Required() Option { return func(d *Decl) { d.Required = true } }

// Placeholder sets the placeholder text.
func Placeholder(text string) Option { return func(d *Decl) { d.Placeholder = text } }

// HelpText sets the help text rendered below the input.
func HelpText(text string) Option { return func(d *Decl) { d.HelpText = text } }

// ErrorText sets the error message rendered for the input.
func ErrorText(text string) Option { return func(d *Decl) { d.Error = text } }

// Readonly marks the input read only.
func Readonly() Option { return func(d *Decl) { d.Readonly = true } }

// FormTemplate overrides the form template.
func FormTemplate(name string) Option { return func(d *Decl) { d.FormTemplate = name } }

// GridItemTemplate overrides the data grid template.
func GridItemTemplate(name string) Option { return func(d *Decl) { d.GridItemTemplate = name } }

// Min sets the lower bound of a number input.
func Min(v float64) Option { return func(d *Decl) { d.Min = &v } }

// Max sets the upper bound of a number input.
func Max(v float64) Option { return func(d *Decl) { d.Max = &v } }

// Step sets the increment of a number input.
func Step(v float64) Option { return func(d *Decl) { d.Step = &v } }

// Choices appends select options.
func Choices(options ...SelectOption) Option {
	return func(d *Decl) { d.Options = append(d.Options, options...) }
}

// Choice is shorthand for a SelectOption.
func Choice(value, label string) SelectOption {
	return SelectOption{Value: value, Label: label}
}

// Rows sets the visible rows of a textarea.
func Rows(n int) Option { return func(d *Decl) { d.Rows = &n } }

// Cols sets the visible columns of a textarea.
func Cols(n int) Option { return func(d *Decl) { d.Cols = &n } }

// Disabled disables a checkbox.
func Disabled() Option { return func(d *Decl) { d.Disabled = true } }

// Accept sets the accepted content types of a file input.
func Accept(types string) Option { return func(d *Decl) { d.Accept = types } }

// Multiple allows several files.
func Multiple() Option { return func(d *Decl) { d.Multiple = true } }

// New builds a declaration of the given kind.
func New(kind Kind, opts ...Option) Decl {
	d := Decl{Kind: kind}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&d)
	}
	d.Kind = kind
	return normalize(d)
}

// Text declares a text input.
func Text(opts ...Option) Decl { return New(KindText, opts...) }

// Email declares an email input.
func Email(opts ...Option) Decl { return New(KindEmail, opts...) }

// Password declares a password input.
func Password(opts ...Option) Decl { return New(KindPassword, opts...) }

// Number declares a number input.
func Number(opts ...Option) Decl { return New(KindNumber, opts...) }

// Select declares a select input.
func Select(opts ...Option) Decl { return New(KindSelect, opts...) }

// TextArea declares a textarea.
func TextArea(opts ...Option) Decl { return New(KindTextArea, opts...) }

// Checkbox declares a checkbox.
func Checkbox(opts ...Option) Decl { return New(KindCheckbox, opts...) }

// Hidden declares a hidden input. Label, placeholder, help and error text are
// never rendered for hidden inputs and are dropped.
func Hidden(opts ...Option) Decl { return New(KindHidden, opts...) }

// File declares a file input.
func File(opts ...Option) Decl { return New(KindFile, opts...) }

func normalize(d Decl) Decl {
	if d.FormTemplate == "" {
		d.FormTemplate = DefaultFormTemplate(d.Kind)
	}
	if d.GridItemTemplate == "" {
		d.GridItemTemplate = DefaultGridItemTemplate
	}

	keepNumber, keepSelect, keepTextArea, keepCheckbox, keepFile := false, false, false, false, false
	switch d.Kind {
	case KindNumber:
		keepNumber = true
	case KindSelect:
		keepSelect = true
	case KindTextArea:
		keepTextArea = true
	case KindCheckbox:
		keepCheckbox = true
	case KindFile:
		keepFile = true
	case KindHidden:
		d.Label = ""
		d.Placeholder = ""
		d.HelpText = ""
		d.Error = ""
	case KindText, KindEmail, KindPassword:
	default:
		panic(fmt.Sprintf("fields: unknown kind %q", d.Kind))
	}

	if !keepNumber {
		d.Min, d.Max, d.Step = nil, nil, nil
	}
	if !keepSelect {
		d.Options = nil
	} else if d.Options != nil {
		d.Options = append([]SelectOption(nil), d.Options...)
	}
	if !keepTextArea {
		d.Rows, d.Cols = nil, nil
	}
	if !keepCheckbox {
		d.Disabled = false
	}
	if !keepFile {
		d.Accept = ""
		d.Multiple = false
	}
	return d
}

// Descriptor is a declaration resolved against the form model attribute it
// was declared for.
type Descriptor struct {
	Name string `json:"name"`
	Decl
}

// Describe pairs a declaration with its attribute name. The declaration is
// copied; later changes to the returned descriptor never reach decl.
func Describe(name string, decl Decl) Descriptor {
	return Descriptor{Name: name, Decl: decl.clone()}
}

// Clone returns a descriptor sharing no slices or pointers with d.
func (d Descriptor) Clone() Descriptor {
	return Describe(d.Name, d.Decl)
}

func (d Decl) clone() Decl {
	if d.Options != nil {
		d.Options = append([]SelectOption(nil), d.Options...)
	}
	d.Min = cloneFloat(d.Min)
	d.Max = cloneFloat(d.Max)
	d.Step = cloneFloat(d.Step)
	d.Rows = cloneInt(d.Rows)
	d.Cols = cloneInt(d.Cols)
	return d
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
