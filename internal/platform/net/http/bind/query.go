package bind

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	perr "launchdeck/internal/platform/errors"

	"github.com/go-playground/validator/v10"
)

// ParseQuery decodes the request query string into T using `query` struct tags, then validates it
// supported field kinds are string, int, bool and *int; a blank value leaves the field zero
func ParseQuery[T any](r *http.Request) (T, error) {
	var zero T
	var dst T

	rv := reflect.ValueOf(&dst).Elem()
	if rv.Kind() != reflect.Struct {
		return zero, perr.Internalf("bind: query target must be a struct")
	}
	q := r.URL.Query()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		name := sf.Tag.Get("query")
		if name == "" || name == "-" || !sf.IsExported() {
			continue
		}
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		f := rv.Field(i)
		switch f.Kind() {
		case reflect.String:
			f.SetString(raw)
		case reflect.Int, reflect.Int32, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return zero, perr.Validationf(name, "%s must be an integer", name)
			}
			f.SetInt(n)
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return zero, perr.Validationf(name, "%s must be a boolean", name)
			}
			f.SetBool(b)
		case reflect.Pointer:
			if f.Type().Elem().Kind() != reflect.Int {
				return zero, perr.Internalf("bind: unsupported query field %s", sf.Name)
			}
			n, err := strconv.Atoi(raw)
			if err != nil {
				return zero, perr.Validationf(name, "%s must be an integer", name)
			}
			f.Set(reflect.ValueOf(&n))
		default:
			return zero, perr.Internalf("bind: unsupported query field %s", sf.Name)
		}
	}

	if err := validate().v.Struct(dst); err != nil {
		var inv *validator.InvalidValidationError
		if errors.As(err, &inv) {
			return zero, perr.Internalf("bind: %v", inv)
		}
		field, msg := fieldAndMessage(err)
		return zero, perr.Validationf(field, "%s", msg)
	}
	return dst, nil
}
