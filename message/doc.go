// Package message builds the multi-line failure text reported by failing
// checks.
//
// A message is a headline followed by one block per operand:
//   - the headline comes from a template whose {0} placeholder is replaced
//     by "checked value" or "checked object" depending on the operand kind
//   - each block is a caption line, the operand's runtime type in brackets,
//     and an indented value dump
package message
