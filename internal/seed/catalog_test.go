package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	require.Len(t, catalog, 3)

	assert.Equal(t, []models.RoleName{models.RoleOwner, models.RoleAdmin, models.RoleMember}, catalog.Names())

	byName := make(map[models.RoleName][]models.Permission, len(catalog))
	for _, e := range catalog {
		byName[e.Name] = e.Permissions
	}

	// OWNER carries every permission, including the destructive ones.
	assert.Contains(t, byName[models.RoleOwner], models.PermDeleteWorkspace)
	assert.Contains(t, byName[models.RoleOwner], models.PermChangeMemberRole)

	// ADMIN manages content but cannot delete the workspace.
	assert.Contains(t, byName[models.RoleAdmin], models.PermCreateProject)
	assert.NotContains(t, byName[models.RoleAdmin], models.PermDeleteWorkspace)

	// MEMBER is limited to the day-to-day task set.
	assert.Contains(t, byName[models.RoleMember], models.PermCreateTask)
	assert.NotContains(t, byName[models.RoleMember], models.PermAddMember)
}

func TestCatalog_NamesOrder(t *testing.T) {
	t.Parallel()

	c := Catalog{
		{Name: models.RoleMember},
		{Name: models.RoleOwner},
	}
	assert.Equal(t, []models.RoleName{models.RoleMember, models.RoleOwner}, c.Names())
}
