// Package contfrac is a small toolkit for simple continued fractions:
// exact expansion of rationals, periodic square roots, convergents and a
// float64-backed arithmetic, plus a catalog and a command-line driver.
//
// 🚀 What is in the box?
//
//	cf/            ContinuedFraction, normalization, convergents, generators,
//	               text and YAML forms
//	config/        TOML / YAML settings shared by the CLI
//	catalog/       named fractions persisted in SQLite
//	cmd/cfrac/     the cfrac command (cobra)
//	examples/      runnable scenarios (Pell's equation, catalog export)
//
// ✨ Quick taste:
//
//	x, _ := cf.FromRational(355, 113) // [3; 7, 16]
//	p, q, _ := x.Convergent(1)        // 22, 7
//	r, _ := cf.Sqrt(2, 20)            // [1; (2)]
//
// ⚙️ Notes:
//
//   - Normalization drops zero terms and folds interior unit terms, so the
//     stored sequence is not always the canonical expansion of the value.
//   - Arithmetic goes through float64 and is approximate.
//   - The periodic text form "[a0; (p1, p2)]" is printed but not parsed.
//
//	go get github.com/katalvlaran/contfrac
package contfrac
