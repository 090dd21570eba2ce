package forms

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// TagName is the struct tag naming the form key of a field.
const TagName = "form"

var (
	decoder  = newDecoder()
	validate = newValidator()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag(TagName)
	d.IgnoreUnknownKeys(true)
	return d
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get(TagName), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// formKey returns the decoder key of field and whether the decoder sees it.
func formKey(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}
	name := strings.SplitN(field.Tag.Get(TagName), ",", 2)[0]
	switch name {
	case "-":
		return "", false
	case "":
		return field.Name, true
	}
	return name, true
}

// hasFormKey reports whether the dotted path resolves to a field the decoder
// fills. Untagged embedded structs are flattened and numeric segments index
// slices, as gorilla/schema does.
func hasFormKey(t reflect.Type, path string) bool {
	for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	head, rest, nested := strings.Cut(path, ".")
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Tag.Get(TagName) == "" {
			if hasFormKey(field.Type, path) {
				return true
			}
			continue
		}
		key, ok := formKey(field)
		if !ok || key != head {
			continue
		}
		if !nested {
			return true
		}
		if index, tail, more := strings.Cut(rest, "."); isIndex(index) {
			if !more {
				return true
			}
			rest = tail
		}
		return hasFormKey(field.Type, rest)
	}
	return false
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidationError reports every field that failed to decode or validate,
// keyed by form field name. Form level messages use the empty key.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "forms: validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		label := name
		if label == "" {
			label = "form"
		}
		parts = append(parts, label+": "+strings.Join(e.Fields[name], "; "))
	}
	return "forms: validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// DecodeValidate decodes values into T using `form` struct tags and applies
// `validate` struct tag rules. T must be a struct type.
func DecodeValidate[T any](values url.Values) (T, error) {
	return DecodeSubmission[T](values, nil)
}

// DecodeSubmission is DecodeValidate for multipart submissions. Uploaded
// files are bound before validation to top level fields of type
// *multipart.FileHeader or []*multipart.FileHeader whose form key matches.
func DecodeSubmission[T any](values url.Values, files Files) (T, error) {
	var out T
	if err := decoder.Decode(&out, values); err != nil {
		return out, decodeError(err)
	}
	bindFiles(reflect.ValueOf(&out).Elem(), files)
	if err := validate.Struct(out); err != nil {
		return out, validationError(err)
	}
	return out, nil
}

var (
	fileHeaderType  = reflect.TypeOf((*multipart.FileHeader)(nil))
	fileHeadersType = reflect.TypeOf([]*multipart.FileHeader(nil))
)

func bindFiles(target reflect.Value, files Files) {
	if len(files) == 0 || target.Kind() != reflect.Struct {
		return
	}
	t := target.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.IsExported() && field.Type.Kind() == reflect.Struct && field.Tag.Get(TagName) == "" {
			bindFiles(target.Field(i), files)
			continue
		}
		key, ok := formKey(field)
		if !ok {
			continue
		}
		uploaded := files[key]
		if len(uploaded) == 0 {
			continue
		}
		switch field.Type {
		case fileHeaderType:
			target.Field(i).Set(reflect.ValueOf(uploaded[0]))
		case fileHeadersType:
			target.Field(i).Set(reflect.ValueOf(append([]*multipart.FileHeader(nil), uploaded...)))
		}
	}
}

func decodeError(err error) error {
	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return fmt.Errorf("forms: decode: %w", err)
	}
	verr := &ValidationError{}
	for key, cause := range multi {
		verr.add(key, conversionMessage(cause))
	}
	return verr
}

func conversionMessage(err error) string {
	var conv schema.ConversionError
	if errors.As(err, &conv) {
		return fmt.Sprintf("invalid value for %s", conv.Type)
	}
	var empty schema.EmptyFieldError
	if errors.As(err, &empty) {
		return "is required"
	}
	return err.Error()
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("forms: validate: %w", err)
	}
	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.add(fe.Field(), ruleMessage(fe))
	}
	return verr
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
}
