package field

import (
	"bytes"
	"database/sql/driver"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind identifica a variante de um Value
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindInt
	KindFloat
	KindBool
	KindBytes
	KindTime
	KindUUID
	KindDecimal
)

var kindNames = [...]string{
	KindNull:    "null",
	KindText:    "text",
	KindInt:     "int",
	KindFloat:   "float",
	KindBool:    "bool",
	KindBytes:   "bytes",
	KindTime:    "time",
	KindUUID:    "uuid",
	KindDecimal: "decimal",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

/*
Value é o conjunto fechado de escalares que podem ser passados de forma
posicional para o driver. Todas as variantes implementam driver.Valuer, então
uma lista de valores pode ir direto para Exec/Query.

Somente os tipos deste pacote implementam Value.
*/
type Value interface {
	driver.Valuer
	Kind() Kind
	value()
}

type Text string

type Int int64

type Float float64

type Bool bool

// Null é o valor nulo do SQL
type Null struct{}

type Bytes []byte

type Time time.Time

type UUID uuid.UUID

type Decimal struct {
	decimal.Decimal
}

func (Text) Kind() Kind    { return KindText }
func (Int) Kind() Kind     { return KindInt }
func (Float) Kind() Kind   { return KindFloat }
func (Bool) Kind() Kind    { return KindBool }
func (Null) Kind() Kind    { return KindNull }
func (Bytes) Kind() Kind   { return KindBytes }
func (Time) Kind() Kind    { return KindTime }
func (UUID) Kind() Kind    { return KindUUID }
func (Decimal) Kind() Kind { return KindDecimal }

func (Text) value()    {}
func (Int) value()     {}
func (Float) value()   {}
func (Bool) value()    {}
func (Null) value()    {}
func (Bytes) value()   {}
func (Time) value()    {}
func (UUID) value()    {}
func (Decimal) value() {}

// Value implementa a interface driver.Valuer
func (v Text) Value() (driver.Value, error) { return string(v), nil }

// Value implementa a interface driver.Valuer
func (v Int) Value() (driver.Value, error) { return int64(v), nil }

// Value implementa a interface driver.Valuer
func (v Float) Value() (driver.Value, error) { return float64(v), nil }

// Value implementa a interface driver.Valuer
func (v Bool) Value() (driver.Value, error) { return bool(v), nil }

// Value implementa a interface driver.Valuer
func (Null) Value() (driver.Value, error) { return nil, nil }

// Value implementa a interface driver.Valuer
func (v Bytes) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return []byte(v), nil
}

// Value implementa a interface driver.Valuer
func (v Time) Value() (driver.Value, error) { return time.Time(v), nil }

// Value implementa a interface driver.Valuer
func (v UUID) Value() (driver.Value, error) { return uuid.UUID(v).String(), nil }

// Value implementa a interface driver.Valuer.
// Sobrescreve o método promovido de decimal.Decimal para deixar o tipo explícito.
func (v Decimal) Value() (driver.Value, error) { return v.Decimal.String(), nil }

// Equal compara dois valores estruturalmente. Float NaN é igual a NaN.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Bytes:
		return bytes.Equal(x, b.(Bytes))
	case Time:
		return time.Time(x).Equal(time.Time(b.(Time)))
	case Decimal:
		return x.Decimal.Equal(b.(Decimal).Decimal)
	case Float:
		y := b.(Float)
		// NaN é igual a NaN
		if math.IsNaN(float64(x)) || math.IsNaN(float64(y)) {
			return math.IsNaN(float64(x)) && math.IsNaN(float64(y))
		}
		return x == y
	}
	return a == b
}

// Clone retorna uma cópia independente do valor
func Clone(v Value) Value {
	if b, ok := v.(Bytes); ok && b != nil {
		c := make(Bytes, len(b))
		copy(c, b)
		return c
	}
	return v
}
