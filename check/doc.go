// Package check provides a fluent assertion engine for test code.
//
// A chain starts with That, which wraps the value under test:
//
//	check.That(order).HasFieldsEqualToThose(wantOrder)
//	check.That(index).ContainsKey("a").And().Not().ContainsKey("z")
//
// Every check either passes silently or raises a *Failure whose message
// renders the checked and expected state in a uniform multi-line format.
// Not inverts the next check only; And continues a chain on the same value.
//
// New checks are thin adapters: build the positive action and the negated
// failure message, then funnel both through Checker.Execute so negation and
// chaining keep working.
package check
