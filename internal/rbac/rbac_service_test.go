package rbac_test

import (
	"testing"

	"hrfiles/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestService_Enforce(t *testing.T) {
	svc, err := rbac.NewService()
	assert.NoError(t, err)

	t.Run("admin inherits user reads", func(t *testing.T) {
		allowed, err := svc.Enforce("admin", "employees", "read")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("admin writes employees", func(t *testing.T) {
		allowed, err := svc.Enforce("admin", "employees", "write")
		assert.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("negative user cannot write employees", func(t *testing.T) {
		allowed, err := svc.Enforce("user", "employees", "write")
		assert.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("negative unknown role denied", func(t *testing.T) {
		allowed, err := svc.Enforce("intern", "employees", "read")
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
