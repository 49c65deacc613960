package obj_test

import (
	"fmt"

	"github.com/hasbyte1/go-fp-utils/obj"
)

func ExampleAssocPath() {
	o := obj.Object{"a": obj.Object{"b": obj.Object{"c": 3, "d": 2}, "e": 1}}
	updated, err := obj.AssocPath([]string{"a", "b", "c"})(10, o)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(obj.Get(updated, "a.b.c"), obj.Get(o, "a.b.c"))
	// Output: 10 3
}

func ExampleDissocPath() {
	o := obj.Object{"a": obj.Object{"b": 1, "e": 2}}
	trimmed, _ := obj.DissocPath([]string{"a", "b"}, o)
	fmt.Println(trimmed)
	// Output: map[a:map[e:2]]
}

func ExampleGet() {
	o := obj.Object{"db": obj.Object{"host": "localhost"}}
	fmt.Println(obj.Get(o, "db.host"), obj.Get(o, "db.port", 5432))
	// Output: localhost 5432
}
