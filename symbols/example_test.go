package symbols_test

import (
	"fmt"

	"github.com/katalvlaran/soundlaw/symbols"
)

// ExampleCatalog interns a word and renders it back, gap included.
func ExampleCatalog() {
	cat := symbols.NewCatalog()
	ids := cat.InternAll([]string{"k", "a", "t"})
	fmt.Println(ids)
	fmt.Println(cat.Tokens(append(ids, symbols.Gap)))
	// Output:
	// [1 2 3]
	// [k a t <epsilon>]
}
