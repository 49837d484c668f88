package builder

import (
	"reflect"
	"regexp"
	"strconv"
	"testing"

	"github.com/dopsilva/rddsql/field"
)

func eq(t testing.TB, expected any, actual any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected:\n%#v\nactual:\n%#v", expected, actual)
	}
}

var placeholderReg = regexp.MustCompile(`\$(\d+)`)

// checkPlaceholders verifica que os placeholders são $1..$n, em ordem, e que
// existe um valor para cada um.
func checkPlaceholders(t testing.TB, b Builder) {
	t.Helper()

	matches := placeholderReg.FindAllStringSubmatch(b.SQL(), -1)
	vals := b.Vals()

	if len(matches) != len(vals) {
		t.Fatalf("%q: %d placeholders for %d values", b.SQL(), len(matches), len(vals))
	}
	for i, m := range matches {
		n, _ := strconv.Atoi(m[1])
		if n != i+1 {
			t.Fatalf("%q: placeholder %d found at position %d", b.SQL(), n, i+1)
		}
	}
}

func fields(pairs ...any) []field.Field {
	out := make([]field.Field, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, field.New(pairs[i].(string), pairs[i+1].(field.Value)))
	}
	return out
}
