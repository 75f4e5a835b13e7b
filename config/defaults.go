// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/geom/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `def:` struct field tag values, recursing into struct fields.
// Errors are automatically logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(setFromDefaultTags(reflect.ValueOf(cfg)))
}

func setFromDefaultTags(v reflect.Value) error {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaults: expected a pointer to a struct, not %v", v.Kind())
	}
	var errs []error
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if def, ok := f.Tag.Lookup("def"); ok {
			if err := setFromString(fv, def); err != nil {
				errs = append(errs, fmt.Errorf("field %s: %w", f.Name, err))
			}
			continue
		}
		if fv.Kind() == reflect.Struct {
			errs = append(errs, setFromDefaultTags(fv.Addr()))
		}
	}
	return errors.Join(errs...)
}

// setFromString sets the given settable value from the given string.
func setFromString(v reflect.Value, s string) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported default value type %v", v.Type())
	}
	return nil
}
