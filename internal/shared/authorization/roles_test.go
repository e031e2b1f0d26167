package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleAtLeast(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleOperator))
	assert.True(t, RoleOperator.AtLeast(RoleEntitySelf))
	assert.True(t, RoleEntitySelf.AtLeast(RoleEntitySelf))
	assert.False(t, RoleEntitySelf.AtLeast(RoleOperator))
	assert.False(t, RoleOperator.AtLeast(RoleAdmin))

	t.Run("unknown roles satisfy no minimum", func(t *testing.T) {
		assert.False(t, UserRole("superuser").AtLeast(RoleEntitySelf))
		assert.False(t, UserRole("").AtLeast(RoleEntitySelf))
	})
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleOperator, ParseUserRole("operator"))
	assert.Equal(t, RoleEntitySelf, ParseUserRole("entity-self"))

	t.Run("unknown stored roles grant nothing", func(t *testing.T) {
		role := ParseUserRole("superuser")
		assert.False(t, role.IsValid())
		assert.False(t, role.AtLeast(RoleEntitySelf))
	})
}

func TestCanAccessEntity(t *testing.T) {
	assert.True(t, CanAccessEntity(0, RoleAdmin, 7))
	assert.True(t, CanAccessEntity(0, RoleOperator, 7))
	assert.True(t, CanAccessEntity(7, RoleEntitySelf, 7))
	assert.False(t, CanAccessEntity(8, RoleEntitySelf, 7))
	assert.False(t, CanAccessEntity(0, RoleEntitySelf, 7))
	assert.False(t, CanAccessEntity(7, UserRole("superuser"), 8))
}
