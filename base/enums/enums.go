// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the shared string conversion
// functions of the named integer enum types.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Integer is the type constraint of enum values.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// String returns the name of the given enum value from the given map,
// or the number if it has no name.
func String[T Integer](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its name in the given
// value map, and returns an error if there is no such name.
// typeName is used in the error message.
func SetString[T Integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is [SetString] after trimming and lowercasing the name.
func SetStringLower[T Integer](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[strings.ToLower(strings.TrimSpace(s))]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// ValueMap returns the inverse of the given name map,
// plus the given aliases.
func ValueMap[T Integer](m map[T]string, aliases map[string]T) map[string]T {
	vm := make(map[string]T, len(m)+len(aliases))
	for i, s := range m {
		vm[s] = i
	}
	for s, i := range aliases {
		vm[s] = i
	}
	return vm
}
