// Package symbols interns phoneme tokens into dense integer identifiers.
//
// 🚀 What is a Catalog?
//
//	A Catalog is a bidirectional table between the tokens of a phonetic
//	transcription ("k", "tʃ", "aː", …) and small integers. Every later stage
//	of the learner works on []ID sequences, never on strings, so the
//	statistics tables and the correspondence model are plain integer maps.
//
// ✨ Guarantees:
//   - ID 0 is reserved for the gap (the empty symbol) and is always present.
//   - Intern is stable: the same token always yields the same ID for the
//     lifetime of the Catalog. There is no removal.
//   - IDs are dense and assigned in first-seen order: 1, 2, 3, …
//
// ⚙️ Usage:
//
//	cat := symbols.NewCatalog()
//	k := cat.Intern("k")          // 1
//	seq := cat.InternAll([]string{"k", "a", "t"})
//	tok := cat.Token(symbols.Gap) // "<epsilon>"
//
// Concurrency:
//
//	Catalog is single-writer. Interning from several goroutines requires
//	external synchronization. Once interning is finished, any number of
//	goroutines may call Lookup/Token concurrently.
package symbols
