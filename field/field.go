package field

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrNotStruct       = errors.New("expected struct")
)

// Field é a atribuição de um valor a uma coluna. Name é o identificador cru,
// sem aspas; o builder faz o quoting na renderização.
type Field struct {
	Name  string
	Value Value
}

// New cria o campo
func New(name string, value Value) Field {
	if value == nil {
		value = Null{}
	}
	return Field{Name: name, Value: value}
}

func (f Field) String() string {
	return fmt.Sprintf("%s=%v", f.Name, f.Value)
}

// CloneAll retorna uma cópia dos campos que não compartilha memória com a origem
func CloneAll(fields []Field) []Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, len(fields))
	for i, f := range fields {
		out[i] = Field{Name: f.Name, Value: Clone(f.Value)}
	}
	return out
}

// From converte um valor Go em Value
func From(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return Clone(x), nil
	case string:
		return Text(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x))
	case uint64:
		return fromUint(x)
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case bool:
		return Bool(x), nil
	case []byte:
		if x == nil {
			return Null{}, nil
		}
		return Clone(Bytes(x)), nil
	case time.Time:
		return Time(x), nil
	case uuid.UUID:
		return UUID(x), nil
	case decimal.Decimal:
		return Decimal{x}, nil
	case sql.NullString:
		if !x.Valid {
			return Null{}, nil
		}
		return Text(x.String), nil
	case sql.NullInt64:
		if !x.Valid {
			return Null{}, nil
		}
		return Int(x.Int64), nil
	case sql.NullInt32:
		if !x.Valid {
			return Null{}, nil
		}
		return Int(x.Int32), nil
	case sql.NullInt16:
		if !x.Valid {
			return Null{}, nil
		}
		return Int(x.Int16), nil
	case sql.NullByte:
		if !x.Valid {
			return Null{}, nil
		}
		return Int(x.Byte), nil
	case sql.NullFloat64:
		if !x.Valid {
			return Null{}, nil
		}
		return Float(x.Float64), nil
	case sql.NullBool:
		if !x.Valid {
			return Null{}, nil
		}
		return Bool(x.Bool), nil
	case sql.NullTime:
		if !x.Valid {
			return Null{}, nil
		}
		return Time(x.Time), nil
	case uuid.NullUUID:
		if !x.Valid {
			return Null{}, nil
		}
		return UUID(x.UUID), nil
	case decimal.NullDecimal:
		if !x.Valid {
			return Null{}, nil
		}
		return Decimal{x.Decimal}, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Null{}, nil
		}
		return From(rv.Elem().Interface())
	}

	if valuer, ok := v.(driver.Valuer); ok {
		dv, err := valuer.Value()
		if err != nil {
			return nil, errors.Wrapf(err, "field: converting %T", v)
		}
		if _, ok := dv.(driver.Valuer); ok {
			return nil, errors.Wrapf(ErrUnsupportedType, "field: %T returned another valuer", v)
		}
		return From(dv)
	}

	// tipos nomeados (type Status string, ...)
	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fromUint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	}

	return nil, errors.Wrapf(ErrUnsupportedType, "field: %T", v)
}

func fromUint(v uint64) (Value, error) {
	if v > math.MaxInt64 {
		return nil, errors.Wrapf(ErrUnsupportedType, "field: uint64 %d overflows int64", v)
	}
	return Int(v), nil
}

// Of lê os campos marcados com rdd-column de uma struct (ou ponteiro para
// struct), na ordem de declaração. Campos com rdd-auto-generated são ignorados
// pois o valor é gerado pelo banco; use Auto para obter os nomes deles.
func Of(src any) ([]Field, error) {
	var fields []Field
	err := traverse(src, func(sf reflect.StructField, fv reflect.Value, column string) error {
		if isAuto(sf) {
			return nil
		}
		v, err := From(fv.Interface())
		if err != nil {
			return errors.Wrapf(err, "field: column %q", column)
		}
		fields = append(fields, Field{Name: column, Value: v})
		return nil
	})
	return fields, err
}

// Auto retorna as colunas marcadas com rdd-auto-generated, próprias para
// serem usadas no returning.
func Auto(src any) ([]string, error) {
	var names []string
	err := traverse(src, func(sf reflect.StructField, _ reflect.Value, column string) error {
		if isAuto(sf) {
			names = append(names, column)
		}
		return nil
	})
	return names, err
}

func isAuto(sf reflect.StructField) bool {
	tv, ok := sf.Tag.Lookup("rdd-auto-generated")
	if !ok {
		return false
	}
	auto, _ := strconv.ParseBool(tv)
	return auto
}

func traverse(src any, fn func(reflect.StructField, reflect.Value, string) error) error {
	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			if rv.Type().Elem().Kind() == reflect.Struct {
				return nil
			}
			break
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errors.Wrapf(ErrNotStruct, "field: got %T", src)
	}
	return traverseStruct(rv, fn)
}

func traverseStruct(rv reflect.Value, fn func(reflect.StructField, reflect.Value, string) error) error {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		sf := rt.Field(i)
		fv := rv.Field(i)

		column, tagged := sf.Tag.Lookup("rdd-column")

		if !tagged {
			// structs embutidas fazem parte da struct externa
			if sf.Anonymous {
				if fv.Kind() == reflect.Pointer && !sf.IsExported() {
					continue
				}
				for fv.Kind() == reflect.Pointer {
					if fv.IsNil() {
						break
					}
					fv = fv.Elem()
				}
				if fv.Kind() == reflect.Struct {
					if err := traverseStruct(fv, fn); err != nil {
						return err
					}
				}
			}
			continue
		}

		if column == "" || column == "-" || !sf.IsExported() {
			continue
		}

		if err := fn(sf, fv, column); err != nil {
			return err
		}
	}

	return nil
}
