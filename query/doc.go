// Package query hosts the read-side handlers for the registry: individual
// lookups and vaccination history.
package query
