package binder

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
)

// Path creates a path parameter binder using the provided extractor.
// The extractor is called for each tagged struct field to get its value.
//
// Struct tags:
//   - `path:"name"` binds to path parameter "name"
//   - `path:"-"` skips the field
//
// Supported field types: string, int, int64, uint, uint64, bool, and
// pointers to these for optional parameters.
//
// Example with chi router:
//
//	type translationsRequest struct {
//		Lang string `path:"lang"`
//	}
//
//	r.Get("/translations/{lang}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, translationsRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, fieldName string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrInvalidPath)
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrInvalidPath)
		}

		rt := rv.Type()

		for i := 0; i < rv.NumField(); i++ {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			if !field.CanSet() {
				continue
			}

			paramName, ok := fieldTagName(fieldType)
			if !ok {
				continue
			}

			value := extractor(r, paramName)
			if value == "" {
				// No value provided, leave as zero value.
				continue
			}

			if err := setFieldValue(field, value); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, fieldType.Name, err)
			}
		}

		return nil
	}
}

// fieldTagName resolves the path parameter name for a struct field.
func fieldTagName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("path")
	if !ok || tag == "-" || tag == "" {
		return "", false
	}
	return tag, true
}

func setFieldValue(field reflect.Value, value string) error {
	if field.Kind() == reflect.Ptr {
		elem := reflect.New(field.Type().Elem())
		if err := setFieldValue(elem.Elem(), value); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}
	return nil
}
