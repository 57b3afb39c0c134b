package propsx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Bind copies properties into the struct pointed to by target and validates it.
// Fields are selected with `prop:"Ice.MessageSizeMax"` and may carry a
// `default:"1024"` fallback. Nested structs are walked; a `prop` tag on a
// struct field is used as a key prefix for its children.
// []string fields are filled like GetPropertyAsList, time.Duration fields accept
// Go durations or a plain integer of milliseconds.
func Bind(p *Properties, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("target must be a pointer to struct")
	}
	if err := bindStruct(p, "", v.Elem()); err != nil {
		return err
	}
	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func bindStruct(p *Properties, prefix string, sv reflect.Value) error {
	st := sv.Type()
	for i := 0; i < sv.NumField(); i++ {
		field := sv.Field(i)
		ft := st.Field(i)
		if !field.CanSet() {
			continue
		}

		key := ft.Tag.Get("prop")
		if prefix != "" && key != "" {
			key = prefix + "." + key
		}

		if field.Kind() == reflect.Struct && field.Type() != reflect.TypeOf(time.Time{}) {
			nested := prefix
			if key != "" {
				nested = key
			}
			if err := bindStruct(p, nested, field); err != nil {
				return fmt.Errorf("bind %s: %w", ft.Name, err)
			}
			continue
		}
		if key == "" {
			continue
		}

		value, ok := p.lookup(key)
		if !ok {
			value = ft.Tag.Get("default")
		}
		if err := setField(field, value); err != nil {
			return fmt.Errorf("bind %s (%s=%q): %w", ft.Name, key, value, err)
		}
	}
	return nil
}

func setField(field reflect.Value, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
				field.SetInt(int64(time.Duration(ms) * time.Millisecond))
				return nil
			}
			d, err := time.ParseDuration(value)
			if err != nil {
				return err
			}
			field.SetInt(int64(d))
			return nil
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Bool:
		// Ice treats any non-zero integer as true.
		if n, err := strconv.Atoi(value); err == nil {
			field.SetBool(n != 0)
			return nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type: %s", field.Type())
		}
		parts := strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		field.Set(reflect.ValueOf(parts))
	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}
	return nil
}
