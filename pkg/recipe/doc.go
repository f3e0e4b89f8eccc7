// Package recipe defines Burger, a record of six ingredient quantities whose
// every write is checked by a validator.Field before it is stored:
//
//	buns      int, 2..3
//	cheese    int, 0..2
//	tomatoes  int, 0..3
//	cutlets   int, 1..3
//	eggs      int, 0..2
//	sauce     one of ketchup, mayo, burger
//
// New assigns the fields in that order and fails on the first invalid value:
//
//	b, err := recipe.New(2, 1, 2, 1, 1, "mayo")
//	if errors.Is(err, validator.ErrOutOfRange) {
//		// ...
//	}
//
// Rules are shared by all burgers and never change after package
// initialization; each Burger keeps its own values.
package recipe
