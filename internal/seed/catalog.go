package seed

import "github.com/Ankitsinha2506/TeamSync-Backend/internal/models"

// CatalogEntry declares one role and the permission set it is created with.
type CatalogEntry struct {
	Name        models.RoleName
	Permissions []models.Permission
}

// Catalog is the ordered role/permission enumeration consumed by the Seeder.
// It is a plain value passed in explicitly, never read from package globals,
// so tests can substitute reduced or mutated catalogs.
type Catalog []CatalogEntry

// Names returns the role names in declared order.
func (c Catalog) Names() []models.RoleName {
	names := make([]models.RoleName, len(c))
	for i, e := range c {
		names[i] = e.Name
	}
	return names
}

// DefaultCatalog returns the product's fixed role catalog. OWNER carries
// every permission; ADMIN manages members, projects, and tasks but not the
// workspace itself; MEMBER gets the day-to-day task set.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			Name: models.RoleOwner,
			Permissions: []models.Permission{
				models.PermCreateWorkspace,
				models.PermDeleteWorkspace,
				models.PermEditWorkspace,
				models.PermManageWorkspaceSettings,
				models.PermAddMember,
				models.PermChangeMemberRole,
				models.PermRemoveMember,
				models.PermCreateProject,
				models.PermEditProject,
				models.PermDeleteProject,
				models.PermCreateTask,
				models.PermEditTask,
				models.PermDeleteTask,
				models.PermViewOnly,
			},
		},
		{
			Name: models.RoleAdmin,
			Permissions: []models.Permission{
				models.PermAddMember,
				models.PermCreateProject,
				models.PermEditProject,
				models.PermDeleteProject,
				models.PermCreateTask,
				models.PermEditTask,
				models.PermDeleteTask,
				models.PermViewOnly,
			},
		},
		{
			Name: models.RoleMember,
			Permissions: []models.Permission{
				models.PermCreateTask,
				models.PermEditTask,
				models.PermViewOnly,
			},
		},
	}
}
