// Package assert panics on programmer errors, it is not for validating input.
package assert

import "reflect"

// NotNil also catches typed nil pointers stored in an interface, ex. a nil
// *oclintdocs.Client passed as an updater.Docs.
func NotNil(value any) {
	if value == nil {
		panic("assert: expected value to be not nil")
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			panic("assert: expected value to be not nil")
		}
	}
}

func NotEmptyStr(str string) {
	if str == "" {
		panic("assert: expected string to be non-empty")
	}
}
