// Package fieldscan compares two objects field by field via reflection,
// without requiring the compared types to implement an equality contract.
//
// Key capabilities:
//   - Deterministic field enumeration: the outer struct's own fields first,
//     then each embedded struct level by level, declaration order within
//     a level
//   - Read-only access to unexported fields
//   - First-difference classification into an Outcome (equal, mismatched
//     field, field missing on one side)
package fieldscan
