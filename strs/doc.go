// Package strs holds the string counterparts of the list helpers.
//
// The candidate substring always comes first, matching the argument order of
// the rest of the module (the value being operated on comes last):
//
//	strs.StartsWith("hello", "hello, world") // → true
//	strs.Reverse("héllo")                   // → "olléh"
package strs
