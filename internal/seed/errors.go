package seed

import (
	"errors"
	"fmt"
)

// Sentinel targets for errors.Is so callers can branch on the failure kind
// without unpacking the concrete type.
var (
	// ErrStoreUnavailable matches any store-level failure during seeding.
	ErrStoreUnavailable = errors.New("seed: store unavailable")

	// ErrMissingDependency matches a required predecessor record being
	// absent, e.g. the OWNER role missing when the admin member is created.
	ErrMissingDependency = errors.New("seed: missing dependency")
)

// StoreError wraps a failed store operation with the operation and entity it
// targeted. Always fatal to the bootstrap run.
type StoreError struct {
	Op     string // "find" | "create" | "save"
	Entity string // "role" | "user" | "account" | "workspace" | "member"
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("seed: %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is reports ErrStoreUnavailable so errors.Is(err, ErrStoreUnavailable) holds
// for every StoreError regardless of the wrapped cause.
func (e *StoreError) Is(target error) bool { return target == ErrStoreUnavailable }

// MissingDependencyError signals an invariant violation between the role
// reconciliation phase and identity provisioning: a record a later step
// depends on is absent. Never silently skipped.
type MissingDependencyError struct {
	Entity string
	Key    string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("seed: required %s %q not found", e.Entity, e.Key)
}

func (e *MissingDependencyError) Is(target error) bool { return target == ErrMissingDependency }

func storeErr(op, entity string, err error) error {
	return &StoreError{Op: op, Entity: entity, Err: err}
}
