// Package obj provides key and path operations on Go maps.
//
// Flat operations ([Assoc], [Dissoc], [Pluck]) are generic over map[K]V.
// Path operations work on nested [Object] values, i.e. map[string]any whose
// nested levels are themselves map[string]any:
//
//	o := obj.Object{"a": obj.Object{"b": obj.Object{"c": 3, "d": 2}}, "e": 1}
//
//	setC := obj.AssocPath([]string{"a", "b", "c"})
//	updated, _ := setC(10, o)        // o is unchanged
//	obj.Get(updated, "a.b.c")         // → 10
//
//	trimmed, _ := obj.DissocPath([]string{"a", "b"}, o)
//
// # Purity
//
// [Assoc], [AssocPath] and [DissocPath] never modify their input: each
// level along the path is rebuilt and untouched branches are shared with
// the original. [Dissoc] is the exception: it deletes the key from the map
// it is given and returns that same map.
//
// # Dot notation
//
// [Get], [Has], [Dot] and [Undot] accept dot-separated paths
// ("user.address.city"); [SplitPath] converts such a string into the
// []string form used by [AssocPath] and [DissocPath].
package obj
