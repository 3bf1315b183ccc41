package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/GeorgePerakathu/To-Do-Reminder-App/internal/api/response"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json names so error locations match the wire
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// decodeBody decodes a JSON request body into dst, one declared field at a
// time. A whole-struct decode stops at the first type mismatch; decoding per
// field lets every mistyped field land in the same problem list.
func decodeBody(r *http.Request, dst any) []response.FieldError {
	invalidBody := []response.FieldError{{
		Loc: []string{"body"},
		Msg: "invalid request body",
	}}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return invalidBody
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return invalidBody
	}

	var problems []response.FieldError
	v := reflect.ValueOf(dst).Elem()
	for i := 0; i < v.NumField(); i++ {
		field := v.Type().Field(i)
		name := jsonFieldName(field)
		if name == "" {
			continue
		}

		rawValue, ok := raw[name]
		if !ok {
			continue
		}

		target := reflect.New(field.Type)
		if err := json.Unmarshal(rawValue, target.Interface()); err != nil {
			problems = append(problems, response.FieldError{
				Loc: []string{"body", name},
				Msg: typeErrorMessage(err),
			})
			continue
		}
		v.Field(i).Set(target.Elem())
	}

	return problems
}

func typeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return "expected " + typeErr.Type.String() + ", got " + typeErr.Value
	}
	return "invalid value"
}

// shapeErrors converts validator violations into the per-field problem list
func shapeErrors(errs validator.ValidationErrors) []response.FieldError {
	out := make([]response.FieldError, 0, len(errs))
	for _, e := range errs {
		var msg string
		switch e.Tag() {
		case "required":
			msg = "field is required"
		case "min":
			msg = "must be at least " + e.Param() + " characters"
		default:
			msg = "validation failed on " + e.Tag()
		}
		out = append(out, response.FieldError{
			Loc: []string{"body", e.Field()},
			Msg: msg,
		})
	}
	return out
}
