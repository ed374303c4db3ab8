package seed

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := storeErr("create", "workspace", cause)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrMissingDependency)
	assert.Equal(t, "seed: create workspace: dial tcp: connection refused", err.Error())

	var storeError *StoreError
	assert.ErrorAs(t, err, &storeError)
	assert.Equal(t, "create", storeError.Op)
	assert.Equal(t, "workspace", storeError.Entity)
}

func TestMissingDependencyError(t *testing.T) {
	t.Parallel()

	err := &MissingDependencyError{Entity: "role", Key: "OWNER"}

	assert.ErrorIs(t, err, ErrMissingDependency)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, `seed: required role "OWNER" not found`, err.Error())

	// Wrapped once more, the sentinel still matches.
	wrapped := fmt.Errorf("provisioning admin: %w", err)
	assert.ErrorIs(t, wrapped, ErrMissingDependency)
}
