// Package model contains the entities stored in the database and the
// payloads used to create them.
//
// Persisted records (Question, Answer) are only ever built by the
// repository from a scanned row. New* types are the unvalidated inputs
// received from the boundary, and EntityID carries an identifier string
// that has not been parsed yet.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their json name, so a failure on
// NewAnswer.QuestionID is reported as "question_id".
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
