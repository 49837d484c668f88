package util

import (
	"io"
	"reflect"
)

// CloseWithErr fecha c e registra a falha como erro. what identifica o
// recurso na mensagem (rows, db, ...).
func CloseWithErr(c io.Closer, what string) {
	if isNil(c) {
		return
	}
	err := c.Close()
	if err == nil {
		return
	}
	if what == "" {
		what = reflect.TypeOf(c).String()
	}
	Errorf("close %s: %v", what, err)
}

func isNil(c io.Closer) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
