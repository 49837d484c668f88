package builder

import (
	"testing"

	"github.com/dopsilva/rddsql/field"
)

func TestUpdate(t *testing.T) {
	var tests = []struct {
		name string
		b    UpdateBuilder
		sql  string
		vals []field.Value
	}{
		{
			name: "empty",
			b:    Update("t"),
			sql:  `UPDATE "t" `,
			vals: []field.Value{},
		},
		{
			name: "empty_set",
			b:    Update("t").Data().Where(field.New("id", field.Int(7))),
			sql:  `UPDATE "t" SET WHERE "id" = $1 `,
			vals: []field.Value{field.Int(7)},
		},
		{
			name: "set",
			b:    Update("t").Data(fields("a", field.Int(1), "b", field.Text("x"))...),
			sql:  `UPDATE "t" SET "a" = $1, "b" = $2 `,
			vals: []field.Value{field.Int(1), field.Text("x")},
		},
		{
			name: "set_where",
			b: Update("t").
				Data(fields("a", field.Int(1), "b", field.Text("x"))...).
				Where(field.New("id", field.Int(7))),
			sql:  `UPDATE "t" SET "a" = $1, "b" = $2 WHERE "id" = $3 `,
			vals: []field.Value{field.Int(1), field.Text("x"), field.Int(7)},
		},
		{
			name: "where_null",
			b: Update("t").
				Data(field.New("a", field.Null{})).
				Where(field.New("deleted_at", field.Null{}), field.New("id", field.Int(7))),
			sql:  `UPDATE "t" SET "a" = $1 WHERE "deleted_at" IS NULL AND "id" = $2 `,
			vals: []field.Value{field.Null{}, field.Int(7)},
		},
		{
			name: "where_appends",
			b: Update("t").
				Data(field.New("a", field.Int(1))).
				Where(field.New("x", field.Int(2))).
				Where(field.New("y", field.Int(3))).
				Returning("id").
				Returning("a"),
			sql:  `UPDATE "t" SET "a" = $1 WHERE "x" = $2 AND "y" = $3 RETURNING "id", "a" `,
			vals: []field.Value{field.Int(1), field.Int(2), field.Int(3)},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			eq(t, test.sql, test.b.SQL())
			eq(t, test.vals, test.b.Vals())
			checkPlaceholders(t, test.b)
		})
	}
}

func TestUpdateClones(t *testing.T) {
	base := Update("t").Where(field.New("id", field.Int(1)))
	a := base.Where(field.New("a", field.Int(2)))
	b := base.Where(field.New("b", field.Int(3)))

	eq(t, `UPDATE "t" WHERE "id" = $1 `, base.SQL())
	eq(t, `UPDATE "t" WHERE "id" = $1 AND "a" = $2 `, a.SQL())
	eq(t, `UPDATE "t" WHERE "id" = $1 AND "b" = $2 `, b.SQL())
}
