// Package asterr collects the sentinel errors used across astcore,
// grounded on the teacher's pkg/config convention of errors.New plus
// fmt.Errorf("...: %w", err) wrapping at call sites, per spec §7's error
// taxonomy.
package asterr

import (
	"errors"

	"github.com/astcore/astcore/draft"
	"github.com/astcore/astcore/fragment"
)

var (
	// ErrValidationFailed marks a builder rejecting data or children.
	// Recovered locally: callers see it as a bool return, never this error
	// directly, unless they choose to construct it for logging.
	ErrValidationFailed = errors.New("astcore: validation failed")

	// ErrReferenceNotFound marks an edit operation that could not locate a
	// node by identity. Recovered locally, surfaced as a bool/empty result.
	ErrReferenceNotFound = errors.New("astcore: reference not found")

	// ErrDomainMismatch marks a comparison or fragment construction across
	// two different Sources. Fatal: never silently swallowed.
	ErrDomainMismatch = fragment.ErrDomainMismatch

	// ErrIncompatibleTransform marks a patch site whose pattern actions
	// could not be applied (e.g. a delete target missing after a prior
	// edit). That match site is skipped; other sites still proceed.
	ErrIncompatibleTransform = errors.New("astcore: incompatible transform")

	// ErrConversionCapHit marks a Transformer fixpoint loop that hit its
	// pass cap before converging. Warning-level, non-fatal.
	ErrConversionCapHit = errors.New("astcore: conversion pass cap reached")
)

// ParseError reports malformed draft input with its row/column, per spec
// §7 (ParseError is fatal with row/column). It is the same concrete type
// the draft package returns — aliased here so other packages can reference
// the taxonomy without importing draft directly for error handling alone.
type ParseError = draft.ParseError

// Fatal panics with err, for call sites that have no error return to
// propagate a fatal condition through (e.g. a Position.Compare across
// mismatched sources).
func Fatal(err error) {
	panic(err)
}
