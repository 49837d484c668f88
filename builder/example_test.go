package builder_test

import (
	"fmt"

	"github.com/dopsilva/rddsql/builder"
	"github.com/dopsilva/rddsql/field"
)

func ExampleInsert() {
	b := builder.Insert("usuarios").
		Data(
			field.New("email", field.Text("dopslv@gmail.com")),
			field.New("idade", field.Int(40)),
		).
		Returning("id")

	fmt.Println(b.Vals())
	fmt.Println(b.SQL())
	// Output:
	// [dopslv@gmail.com 40]
	// INSERT INTO "usuarios" ("email", "idade") VALUES ($1, $2) RETURNING "id"
}

func ExampleUpdate() {
	b := builder.Update("usuarios").
		Data(field.New("nome", field.Text("Daniel"))).
		Where(field.New("id", field.Int(1)))

	fmt.Printf("%q\n", b.SQL())
	// Output:
	// "UPDATE \"usuarios\" SET \"nome\" = $1 WHERE \"id\" = $2 "
}
