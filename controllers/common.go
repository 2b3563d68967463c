package controllers

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const requestTimeout = 10 * time.Second

var Validate = newValidator()

// newValidator reports violations under the wire field name rather than
// the Go struct field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
