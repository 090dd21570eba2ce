// Package forms binds field declarations to typed form models.
//
// A Model lists its fields explicitly, in the order they render, and owns the
// parser used for submissions. The default parser decodes url.Values with
// gorilla/schema using `form` struct tags and then applies
// go-playground/validator `validate` tags:
//
//	type Login struct {
//		Email    string `form:"email" validate:"required,email"`
//		Password string `form:"password" validate:"required,min=8"`
//	}
//
//	var loginForm = forms.MustModel[Login](
//		forms.Field("email", fields.Email(fields.Label("Email"), fields.Required())),
//		forms.Field("password", fields.Password(fields.Label("Password"))),
//	)
//
// Field names must match a `form` key of the model type. Multipart uploads
// are bound to *multipart.FileHeader or []*multipart.FileHeader fields before
// validation runs.
//
//	type Profile struct {
//		Avatar *multipart.FileHeader `form:"avatar" validate:"required"`
//	}
package forms
