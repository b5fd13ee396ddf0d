// Package store persists individuals and their vaccination records using Bun.
//
// The store is a direct pass-through to SQL: it performs no validation and
// treats "no matching rows" as a normal outcome. Lookups by name return nil
// (not an error) when the individual is absent.
package store
