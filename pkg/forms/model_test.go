package forms

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-admin/pkg/fields"
	"github.com/goliatone/go-admin/pkg/testsupport"
)

type signup struct {
	Email      string `form:"email" validate:"required,email"`
	Name       string `form:"name"`
	Age        int    `form:"age" validate:"min=18"`
	Newsletter bool   `form:"newsletter"`
}

func signupModel(t *testing.T) *Model[signup] {
	t.Helper()
	model, err := NewModel[signup](
		Field("email", fields.Email(fields.Label("Email"), fields.Required())),
		Field("name", fields.Text(fields.Label("Name"))),
		Field("age", fields.Number(fields.Min(18))),
		Field("newsletter", fields.Checkbox(fields.Label("Newsletter"))),
	)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return model
}

func TestModel_DescriptorsFollowDeclarationOrder(t *testing.T) {
	model := signupModel(t)

	var names []string
	for _, desc := range model.Descriptors() {
		names = append(names, desc.Name)
	}
	want := []string{"email", "name", "age", "newsletter"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("descriptor order mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_DescriptorsAreCopies(t *testing.T) {
	model := signupModel(t)
	first := model.Descriptors()
	first[0].Name = "mutated"

	if got := model.Descriptors()[0].Name; got != "email" {
		t.Fatalf("expected model descriptors to be immutable, got %q", got)
	}

	type pick struct {
		Plan  string `form:"plan"`
		Seats int    `form:"seats"`
	}
	picker := MustModel[pick](
		Field("plan", fields.Select(fields.Choices(fields.Choice("free", "Free")))),
		Field("seats", fields.Number(fields.Max(10))),
	)
	mutated := picker.Descriptors()
	mutated[0].Options[0].Label = "MUTATED"
	*mutated[1].Max = 99

	again := picker.Descriptors()
	if got := again[0].Options[0].Label; got != "Free" {
		t.Fatalf("expected option label to survive caller edits, got %q", got)
	}
	if got := *again[1].Max; got != 10 {
		t.Fatalf("expected max to survive caller edits, got %v", got)
	}
}

func TestNewModel_RejectsDuplicateAndEmptyNames(t *testing.T) {
	if _, err := NewModel[signup](Field("email", fields.Email()), Field("email", fields.Text())); err == nil {
		t.Fatalf("expected duplicate name error")
	}
	if _, err := NewModel[signup](Field(" ", fields.Text())); err == nil {
		t.Fatalf("expected empty name error")
	}
}

func TestNewModel_NamesMustMatchFormKeys(t *testing.T) {
	_, err := NewModel[signup](Field("emial", fields.Email()))
	if err == nil || !strings.Contains(err.Error(), `"emial"`) {
		t.Fatalf("expected unknown key error, got %v", err)
	}

	type ignored struct {
		Secret string `form:"-"`
		hidden string
	}
	for _, name := range []string{"Secret", "-", "hidden"} {
		if _, err := NewModel[ignored](Field(name, fields.Text())); err == nil {
			t.Fatalf("expected %q to be rejected", name)
		}
	}

	if _, err := NewModel[string](Field("value", fields.Text())); err == nil {
		t.Fatalf("expected non struct model type to be rejected")
	}
}

func TestNewModel_AcceptsDecoderPaths(t *testing.T) {
	type address struct {
		City string `form:"city"`
	}
	type Audit struct {
		Note string `form:"note"`
	}
	type profile struct {
		Audit
		Nickname string
		Home     address   `form:"home"`
		Offices  []address `form:"offices"`
	}

	model, err := NewModel[profile](
		Field("note", fields.Text()),
		Field("Nickname", fields.Text()),
		Field("home.city", fields.Text()),
		Field("offices.0.city", fields.Text()),
	)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}

	got, err := model.Parse(url.Values{
		"note":           {"checked"},
		"Nickname":       {"ada"},
		"home.city":      {"London"},
		"offices.0.city": {"Paris"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := profile{
		Audit:    Audit{Note: "checked"},
		Nickname: "ada",
		Home:     address{City: "London"},
		Offices:  []address{{City: "Paris"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed profile mismatch (-want +got):\n%s", diff)
	}

	if _, err := NewModel[profile](Field("home.town", fields.Text())); err == nil {
		t.Fatalf("expected unknown nested key to be rejected")
	}
}

func TestModel_ParseValid(t *testing.T) {
	model := signupModel(t)

	got, err := model.Parse(url.Values{
		"email":      {"ada@example.com"},
		"name":       {"Ada"},
		"age":        {"36"},
		"newsletter": {"on"},
		"unknown":    {"ignored"},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := signup{Email: "ada@example.com", Name: "Ada", Age: 36, Newsletter: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed value mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_ParseValidationFailure(t *testing.T) {
	model := signupModel(t)

	_, err := model.Parse(url.Values{"email": {"nope"}, "age": {"12"}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
	if _, ok := verr.Fields["email"]; !ok {
		t.Fatalf("expected email failure, got %v", verr.Fields)
	}
	if msgs := verr.Fields["age"]; len(msgs) != 1 || msgs[0] != "must be at least 18" {
		t.Fatalf("unexpected age messages %v", msgs)
	}
}

func TestModel_ParseConversionFailure(t *testing.T) {
	model := signupModel(t)

	_, err := model.Parse(url.Values{"email": {"ada@example.com"}, "age": {"old"}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T (%v)", err, err)
	}
	if _, ok := verr.Fields["age"]; !ok {
		t.Fatalf("expected age conversion failure, got %v", verr.Fields)
	}
}

func TestModel_ParseRequest(t *testing.T) {
	model := signupModel(t)
	req := testsupport.FormRequest(http.MethodPost, "/signup", url.Values{
		"email": {"grace@example.com"},
		"age":   {"40"},
	})

	got, err := model.ParseRequest(req)
	if err != nil {
		t.Fatalf("parse request: %v", err)
	}
	if got.Email != "grace@example.com" || got.Age != 40 {
		t.Fatalf("unexpected value %+v", got)
	}
}

func TestModel_ParseRequestBindsUploads(t *testing.T) {
	type profile struct {
		Name        string                  `form:"name" validate:"required"`
		Avatar      *multipart.FileHeader   `form:"avatar" validate:"required"`
		Attachments []*multipart.FileHeader `form:"attachments"`
	}
	model := MustModel[profile](
		Field("name", fields.Text()),
		Field("avatar", fields.File(fields.Accept("image/*"), fields.Required())),
		Field("attachments", fields.File(fields.Multiple())),
	)

	req := testsupport.MultipartRequest(t, http.MethodPost, "/profile", url.Values{"name": {"Ada"}},
		testsupport.Upload{Field: "avatar", Filename: "ada.png", Content: "png"},
		testsupport.Upload{Field: "attachments", Filename: "a.txt", Content: "a"},
		testsupport.Upload{Field: "attachments", Filename: "b.txt", Content: "b"},
	)
	got, err := model.ParseRequest(req)
	if err != nil {
		t.Fatalf("parse request: %v", err)
	}
	if got.Name != "Ada" || got.Avatar == nil || got.Avatar.Filename != "ada.png" {
		t.Fatalf("unexpected profile %+v", got)
	}
	var names []string
	for _, file := range got.Attachments {
		names = append(names, file.Filename)
	}
	if diff := cmp.Diff([]string{"a.txt", "b.txt"}, names); diff != "" {
		t.Fatalf("attachments mismatch (-want +got):\n%s", diff)
	}

	missing := testsupport.MultipartRequest(t, http.MethodPost, "/profile", url.Values{"name": {"Ada"}})
	_, err = model.ParseRequest(missing)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if diff := cmp.Diff(map[string][]string{"avatar": {"is required"}}, verr.Fields); diff != "" {
		t.Fatalf("validation fields mismatch (-want +got):\n%s", diff)
	}
}

func TestModel_WithParser(t *testing.T) {
	called := false
	model := signupModel(t).WithParser(func(values url.Values, _ Files) (signup, error) {
		called = true
		return signup{Name: values.Get("name")}, nil
	})

	got, err := model.Parse(url.Values{"name": {"custom"}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !called || got.Name != "custom" {
		t.Fatalf("expected custom parser result, got %+v (called=%v)", got, called)
	}
}
