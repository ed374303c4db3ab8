package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// --- in-memory fake stores ---

// memDB holds the records shared by the per-entity fakes.
type memDB struct {
	roles      []*models.Role
	users      []*models.User
	accounts   []*models.Account
	workspaces []*models.Workspace
	members    []*models.Member
}

type fakeRoles struct {
	db *memDB
	// findErr, when set, is consulted on every FindByName call.
	findErr   func(name models.RoleName, call int) error
	createErr func(role *models.Role) error
	findCalls int
}

func (f *fakeRoles) FindByName(_ context.Context, name models.RoleName) (*models.Role, error) {
	f.findCalls++
	if f.findErr != nil {
		if err := f.findErr(name, f.findCalls); err != nil {
			return nil, err
		}
	}
	for _, r := range f.db.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRoles) Create(_ context.Context, role *models.Role) error {
	if f.createErr != nil {
		if err := f.createErr(role); err != nil {
			return err
		}
	}
	role.ID = uuid.New()
	f.db.roles = append(f.db.roles, role)
	return nil
}

type fakeUsers struct {
	db        *memDB
	findErr   error
	createErr error
	saveErr   error
	saveCalls int
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// Create mimics the real store's write-path contract: the transient
// plaintext password is hashed and cleared before the record lands.
func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = uuid.New()
	if user.Password != "" {
		user.PasswordHash = "hashed:" + user.Password
		user.Password = ""
	}
	f.db.users = append(f.db.users, user)
	return nil
}

func (f *fakeUsers) Save(_ context.Context, user *models.User) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	return nil
}

type fakeAccounts struct {
	db        *memDB
	createErr error
}

func (f *fakeAccounts) Create(_ context.Context, account *models.Account) error {
	if f.createErr != nil {
		return f.createErr
	}
	account.ID = uuid.New()
	f.db.accounts = append(f.db.accounts, account)
	return nil
}

type fakeWorkspaces struct {
	db        *memDB
	createErr error
}

func (f *fakeWorkspaces) Create(_ context.Context, workspace *models.Workspace) error {
	if f.createErr != nil {
		return f.createErr
	}
	workspace.ID = uuid.New()
	f.db.workspaces = append(f.db.workspaces, workspace)
	return nil
}

type fakeMembers struct {
	db        *memDB
	createErr error
}

func (f *fakeMembers) Create(_ context.Context, member *models.Member) error {
	if f.createErr != nil {
		return f.createErr
	}
	member.ID = uuid.New()
	f.db.members = append(f.db.members, member)
	return nil
}

// --- helpers ---

type fixture struct {
	db         *memDB
	roles      *fakeRoles
	users      *fakeUsers
	accounts   *fakeAccounts
	workspaces *fakeWorkspaces
	members    *fakeMembers
}

func newFixture() *fixture {
	db := &memDB{}
	return &fixture{
		db:         db,
		roles:      &fakeRoles{db: db},
		users:      &fakeUsers{db: db},
		accounts:   &fakeAccounts{db: db},
		workspaces: &fakeWorkspaces{db: db},
		members:    &fakeMembers{db: db},
	}
}

var testClock = func() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testAdmin() Admin {
	return Admin{
		Email:                "admin@x.com",
		Name:                 "System Admin",
		Password:             "Admin@123",
		WorkspaceName:        "Main Workspace",
		WorkspaceDescription: "Auto-created for the system admin",
	}
}

func twoRoleCatalog() Catalog {
	return Catalog{
		{Name: models.RoleOwner, Permissions: []models.Permission{models.PermCreateWorkspace, models.PermDeleteWorkspace}},
		{Name: models.RoleMember, Permissions: []models.Permission{models.PermViewOnly}},
	}
}

func newSeeder(f *fixture, catalog Catalog, admin Admin) *Seeder {
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(f.roles, f.users, f.accounts, f.workspaces, f.members, catalog, admin,
		WithLogger(quiet), WithClock(testClock))
}

// --- tests ---

func TestRun_EmptyStore(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := newSeeder(f, twoRoleCatalog(), testAdmin())

	result, err := s.Run(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, StateComplete, result.State)
	assert.Equal(t, StateComplete, s.State())
	assert.Equal(t, StatusOK, result.Roles.Status)
	assert.Equal(t, StatusOK, result.Admin.Status)
	assert.True(t, result.AdminCreated)
	assert.Equal(t, []string{"OWNER", "MEMBER"}, result.CreatedRoles)

	require.Len(t, f.db.roles, 2)
	assert.Equal(t, models.RoleOwner, f.db.roles[0].Name)
	assert.Equal(t, models.RoleMember, f.db.roles[1].Name)

	require.Len(t, f.db.users, 1)
	user := f.db.users[0]
	assert.Equal(t, "admin@x.com", user.Email)
	assert.Equal(t, "System Admin", user.Name)
	assert.Equal(t, "hashed:Admin@123", user.PasswordHash)
	assert.Empty(t, user.Password, "plaintext must not survive the write path")

	require.Len(t, f.db.accounts, 1)
	account := f.db.accounts[0]
	assert.Equal(t, user.ID, account.UserID)
	assert.Equal(t, models.ProviderEmail, account.Provider)
	assert.Equal(t, "admin@x.com", account.ProviderID)

	require.Len(t, f.db.workspaces, 1)
	workspace := f.db.workspaces[0]
	assert.Equal(t, "Main Workspace", workspace.Name)
	assert.Equal(t, user.ID, workspace.OwnerID)

	require.Len(t, f.db.members, 1)
	member := f.db.members[0]
	assert.Equal(t, user.ID, member.UserID)
	assert.Equal(t, workspace.ID, member.WorkspaceID)
	assert.Equal(t, f.db.roles[0].ID, member.RoleID)
	assert.Equal(t, testClock(), member.JoinedAt)

	require.NotNil(t, user.CurrentWorkspaceID)
	assert.Equal(t, workspace.ID, *user.CurrentWorkspaceID)
	assert.Equal(t, 1, f.users.saveCalls)
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := newSeeder(f, twoRoleCatalog(), testAdmin())

	_, err := s.Run(context.Background())
	require.NoError(t, err)

	second, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateComplete, second.State)
	assert.Equal(t, StatusSkipped, second.Admin.Status)
	assert.False(t, second.AdminCreated)
	assert.Empty(t, second.CreatedRoles)

	assert.Len(t, f.db.roles, 2)
	assert.Len(t, f.db.users, 1)
	assert.Len(t, f.db.accounts, 1)
	assert.Len(t, f.db.workspaces, 1)
	assert.Len(t, f.db.members, 1)
}

func TestRun_PreexistingRolesNotOverwritten(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := newSeeder(f, twoRoleCatalog(), testAdmin())
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	originalPerms := f.db.roles[0].Permissions

	// Re-run with a mutated catalog: existing permission sets must not change.
	mutated := Catalog{
		{Name: models.RoleOwner, Permissions: []models.Permission{models.PermViewOnly}},
		{Name: models.RoleMember, Permissions: []models.Permission{models.PermViewOnly}},
	}
	s2 := newSeeder(f, mutated, testAdmin())
	_, err = s2.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, f.db.roles, 2)
	assert.Equal(t, originalPerms, f.db.roles[0].Permissions)
}

func TestRun_AdminExistsSkipsChain(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.db.users = append(f.db.users, &models.User{ID: uuid.New(), Email: "admin@x.com"})

	s := newSeeder(f, twoRoleCatalog(), testAdmin())
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StateComplete, result.State)
	assert.Equal(t, StatusSkipped, result.Admin.Status)
	assert.False(t, result.AdminCreated)

	// Only the catalog roles were created; the identity chain never ran.
	assert.Len(t, f.db.roles, 2)
	assert.Len(t, f.db.users, 1)
	assert.Empty(t, f.db.accounts)
	assert.Empty(t, f.db.workspaces)
	assert.Empty(t, f.db.members)
	assert.Zero(t, f.users.saveCalls)
}

func TestRun_MissingOwnerRole(t *testing.T) {
	t.Parallel()

	f := newFixture()
	// Catalog without OWNER: reconciliation succeeds but step 4 of the
	// identity chain cannot resolve its dependency.
	catalog := Catalog{
		{Name: models.RoleMember, Permissions: []models.Permission{models.PermViewOnly}},
	}
	s := newSeeder(f, catalog, testAdmin())

	result, err := s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingDependency)

	var depErr *MissingDependencyError
	require.ErrorAs(t, err, &depErr)
	assert.Equal(t, "role", depErr.Entity)
	assert.Equal(t, "OWNER", depErr.Key)

	assert.Equal(t, StateFailed, result.State)
	assert.Equal(t, StateFailed, s.State())
	assert.Equal(t, StatusError, result.Admin.Status)

	// No membership and no back-reference without the OWNER role.
	assert.Empty(t, f.db.members)
	assert.Zero(t, f.users.saveCalls)
}

func TestRun_AdminPasswordRequired(t *testing.T) {
	t.Parallel()

	f := newFixture()
	admin := testAdmin()
	admin.Password = ""
	s := newSeeder(f, twoRoleCatalog(), admin)

	_, err := s.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAdminPasswordRequired)
	assert.Empty(t, f.db.users)
}

func TestRun_StoreFailurePropagation(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")

	tests := []struct {
		name   string
		breakf func(f *fixture)
		// expected record counts after the failed run
		wantUsers      int
		wantAccounts   int
		wantWorkspaces int
		wantMembers    int
		wantSaves      int
	}{
		{
			name:   "role find fails",
			breakf: func(f *fixture) { f.roles.findErr = func(models.RoleName, int) error { return boom } },
		},
		{
			name:   "role create fails",
			breakf: func(f *fixture) { f.roles.createErr = func(*models.Role) error { return boom } },
		},
		{
			name:   "user find fails",
			breakf: func(f *fixture) { f.users.findErr = boom },
		},
		{
			name:   "user create fails",
			breakf: func(f *fixture) { f.users.createErr = boom },
		},
		{
			name:      "account create fails",
			breakf:    func(f *fixture) { f.accounts.createErr = boom },
			wantUsers: 1,
		},
		{
			name:         "workspace create fails",
			breakf:       func(f *fixture) { f.workspaces.createErr = boom },
			wantUsers:    1,
			wantAccounts: 1,
		},
		{
			name: "owner role lookup fails",
			breakf: func(f *fixture) {
				// Let the two reconciliation lookups pass, fail the
				// step-4 OWNER resolution.
				f.roles.findErr = func(_ models.RoleName, call int) error {
					if call > 2 {
						return boom
					}
					return nil
				}
			},
			wantUsers:      1,
			wantAccounts:   1,
			wantWorkspaces: 1,
		},
		{
			name:           "member create fails",
			breakf:         func(f *fixture) { f.members.createErr = boom },
			wantUsers:      1,
			wantAccounts:   1,
			wantWorkspaces: 1,
		},
		{
			name:           "user save fails",
			breakf:         func(f *fixture) { f.users.saveErr = boom },
			wantUsers:      1,
			wantAccounts:   1,
			wantWorkspaces: 1,
			wantMembers:    1,
			wantSaves:      1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture()
			tc.breakf(f)
			s := newSeeder(f, twoRoleCatalog(), testAdmin())

			result, err := s.Run(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrStoreUnavailable)
			assert.ErrorIs(t, err, boom, "cause must stay unwrappable")
			assert.Equal(t, StateFailed, result.State)

			// No step after the failing one may have executed.
			assert.Len(t, f.db.users, tc.wantUsers)
			assert.Len(t, f.db.accounts, tc.wantAccounts)
			assert.Len(t, f.db.workspaces, tc.wantWorkspaces)
			assert.Len(t, f.db.members, tc.wantMembers)
			assert.Equal(t, tc.wantSaves, f.users.saveCalls)
		})
	}
}

func TestRun_RoleFailureMarksAdminNotRun(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.roles.findErr = func(models.RoleName, int) error { return errors.New("connection refused") }
	s := newSeeder(f, twoRoleCatalog(), testAdmin())

	result, err := s.Run(context.Background())
	require.Error(t, err)

	// The admin phase never started; its result says so explicitly instead
	// of carrying a zero PhaseResult into the printed JSON.
	assert.Equal(t, StatusError, result.Roles.Status)
	assert.Equal(t, "admin", result.Admin.Name)
	assert.Equal(t, StatusNotRun, result.Admin.Status)
}

func TestRun_RolesReconciledBeforeProvisioning(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := newSeeder(f, DefaultCatalog(), testAdmin())

	result, err := s.Run(context.Background())
	require.NoError(t, err)

	// The OWNER role referenced by the admin membership is the reconciled
	// record, proving phase ordering.
	require.Len(t, f.db.members, 1)
	var ownerRole *models.Role
	for _, r := range f.db.roles {
		if r.Name == models.RoleOwner {
			ownerRole = r
		}
	}
	require.NotNil(t, ownerRole)
	assert.Equal(t, ownerRole.ID, f.db.members[0].RoleID)
	assert.Equal(t, []string{"OWNER", "ADMIN", "MEMBER"}, result.CreatedRoles)
}

func TestState_BeforeRun(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := newSeeder(f, twoRoleCatalog(), testAdmin())
	assert.Equal(t, StateNotStarted, s.State())
}
