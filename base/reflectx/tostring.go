// Copyright (c) 2026, Laytree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// ToString returns a string form of the given value, suitable for
// diagnostic dumps. Slices and arrays are rendered as a bracketed,
// comma-joined list of the string forms of their elements. Maps are
// rendered as key: value pairs in braces. A nil pointer or interface
// is rendered as "nil". [fmt.Stringer] implementations are used
// when available.
func ToString(v any) string {
	if v == nil {
		return "nil"
	}
	if st, ok := v.(fmt.Stringer); ok {
		return st.String()
	}
	rv := reflect.ValueOf(v)
	return valueString(rv)
}

func valueString(rv reflect.Value) string {
	if !rv.IsValid() {
		return "nil"
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		if rv.CanInterface() {
			if st, ok := rv.Interface().(fmt.Stringer); ok {
				return st.String()
			}
		}
		return valueString(rv.Elem())
	case reflect.Slice, reflect.Array:
		var sb strings.Builder
		sb.WriteString("[")
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(valueString(rv.Index(i)))
		}
		sb.WriteString("]")
		return sb.String()
	case reflect.Map:
		if rv.IsNil() {
			return "nil"
		}
		keys := rv.MapKeys()
		strs := make([]string, 0, len(keys))
		for _, k := range keys {
			strs = append(strs, valueString(k)+": "+valueString(rv.MapIndex(k)))
		}
		// map iteration order is not stable, so we sort for determinism
		slices.Sort(strs)
		return "{" + strings.Join(strs, ", ") + "}"
	default:
		if rv.CanInterface() {
			if st, ok := rv.Interface().(fmt.Stringer); ok {
				return st.String()
			}
			return fmt.Sprintf("%v", rv.Interface())
		}
		return fmt.Sprintf("%v", rv)
	}
}
