// Package seed implements the startup bootstrap pipeline: it reconciles the
// fixed role catalog against the store and provisions the default
// administrative identity graph (user, account, workspace, membership).
//
// The pipeline is strictly sequential and idempotent across process
// restarts: every creation is guarded by an existence check, and the whole
// routine runs to completion before the HTTP server binds its socket.
package seed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// RoleStore is the role slice of the entity store consumed by the Seeder.
// Find methods return (nil, nil) when no record matches.
type RoleStore interface {
	FindByName(ctx context.Context, name models.RoleName) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
}

// UserStore is the user slice of the entity store. Create receives the
// plaintext password in models.User.Password; hashing it before persistence
// is the store's responsibility, not the Seeder's.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

// AccountStore persists authentication-provider bindings.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
}

// WorkspaceStore persists workspaces.
type WorkspaceStore interface {
	Create(ctx context.Context, workspace *models.Workspace) error
}

// MemberStore persists workspace memberships.
type MemberStore interface {
	Create(ctx context.Context, member *models.Member) error
}

// Admin holds the fixed administrative identity provisioned on first run.
type Admin struct {
	Email                string
	Name                 string
	Password             string // plaintext; hashed by the store write path
	WorkspaceName        string
	WorkspaceDescription string
}

// ErrAdminPasswordRequired is returned when the admin must be created but no
// password was configured.
var ErrAdminPasswordRequired = errors.New("seed: admin password not configured")

// Seeder runs the bootstrap pipeline against the entity store.
type Seeder struct {
	roles      RoleStore
	users      UserStore
	accounts   AccountStore
	workspaces WorkspaceStore
	members    MemberStore

	catalog Catalog
	admin   Admin

	log *slog.Logger
	now func() time.Time

	state State
}

// Option customises a Seeder.
type Option func(*Seeder)

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Seeder) { s.log = l }
}

// WithClock replaces the time source; used by tests to pin Member.JoinedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// New constructs a Seeder. The catalog and admin identity are explicit
// inputs so tests can substitute both.
func New(roles RoleStore, users UserStore, accounts AccountStore, workspaces WorkspaceStore, members MemberStore, catalog Catalog, admin Admin, opts ...Option) *Seeder {
	s := &Seeder{
		roles:      roles,
		users:      users,
		accounts:   accounts,
		workspaces: workspaces,
		members:    members,
		catalog:    catalog,
		admin:      admin,
		log:        slog.Default(),
		now:        time.Now,
		state:      StateNotStarted,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the state reached by the most recent Run.
func (s *Seeder) State() State { return s.state }

// Run executes the full bootstrap pipeline: role reconciliation first, then
// administrative identity provisioning. Any failure aborts immediately, is
// logged with context, and is returned to the caller — the process must not
// serve traffic against an unseeded store.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{State: StateNotStarted}

	s.state = StateRolesReconciling
	s.log.InfoContext(ctx, "seed: reconciling role catalog", "roles", len(s.catalog))

	created, err := s.reconcileRoles(ctx)
	if err != nil {
		s.state = StateFailed
		result.State = StateFailed
		result.Roles = PhaseResult{Name: "roles", Status: StatusError, Error: err.Error()}
		result.Admin = PhaseResult{Name: "admin", Status: StatusNotRun}
		s.log.ErrorContext(ctx, "seed: role reconciliation failed", "error", err)
		return result, err
	}
	result.Roles = PhaseResult{Name: "roles", Status: StatusOK}
	result.CreatedRoles = created
	s.state = StateRolesDone

	s.state = StateProvisioning
	adminCreated, err := s.provisionAdmin(ctx)
	if err != nil {
		s.state = StateFailed
		result.State = StateFailed
		result.Admin = PhaseResult{Name: "admin", Status: StatusError, Error: err.Error()}
		s.log.ErrorContext(ctx, "seed: admin provisioning failed", "error", err)
		return result, err
	}
	if adminCreated {
		result.Admin = PhaseResult{Name: "admin", Status: StatusOK}
	} else {
		result.Admin = PhaseResult{Name: "admin", Status: StatusSkipped}
	}
	result.AdminCreated = adminCreated

	s.state = StateComplete
	result.State = StateComplete
	s.log.InfoContext(ctx, "seed: completed", "rolesCreated", len(created), "adminCreated", adminCreated)
	return result, nil
}

// reconcileRoles ensures one Role record exists per catalog entry, in the
// catalog's declared order. Reconciliation is creation-only: pre-existing
// records are trusted as-is and never diffed against the catalog.
func (s *Seeder) reconcileRoles(ctx context.Context) ([]string, error) {
	var created []string
	for _, entry := range s.catalog {
		existing, err := s.roles.FindByName(ctx, entry.Name)
		if err != nil {
			return created, storeErr("find", "role", err)
		}
		if existing != nil {
			s.log.InfoContext(ctx, "seed: role ok", "role", string(entry.Name))
			continue
		}

		role := &models.Role{
			Name:        entry.Name,
			Permissions: entry.Permissions,
		}
		if err := s.roles.Create(ctx, role); err != nil {
			return created, storeErr("create", "role", err)
		}
		created = append(created, string(entry.Name))
		s.log.InfoContext(ctx, "seed: created role", "role", string(entry.Name))
	}
	return created, nil
}

// provisionAdmin ensures the administrative identity graph exists. The guard
// checks only for the User record: once it exists the entire chain is
// skipped. A crash partway through a previous run therefore leaves an
// under-provisioned admin that is reported, not repaired — hence the WARN on
// the skip branch.
func (s *Seeder) provisionAdmin(ctx context.Context) (bool, error) {
	existing, err := s.users.FindByEmail(ctx, s.admin.Email)
	if err != nil {
		return false, storeErr("find", "user", err)
	}
	if existing != nil {
		s.log.WarnContext(ctx, "seed: admin user already exists — provisioning skipped",
			"email", s.admin.Email)
		return false, nil
	}

	if s.admin.Password == "" {
		return false, ErrAdminPasswordRequired
	}

	// Step 1: the User. The store hashes Password before persistence.
	user := &models.User{
		Email:    s.admin.Email,
		Name:     s.admin.Name,
		Password: s.admin.Password,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return false, storeErr("create", "user", err)
	}
	s.log.InfoContext(ctx, "seed: created admin user", "email", user.Email, "userId", user.ID)

	// Step 2: the email Account bound to the new User.
	account := &models.Account{
		UserID:     user.ID,
		Provider:   models.ProviderEmail,
		ProviderID: s.admin.Email,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return false, storeErr("create", "account", err)
	}
	s.log.InfoContext(ctx, "seed: created admin account", "provider", string(account.Provider))

	// Step 3: the Workspace owned by the new User.
	workspace := &models.Workspace{
		Name:        s.admin.WorkspaceName,
		Description: s.admin.WorkspaceDescription,
		OwnerID:     user.ID,
	}
	if err := s.workspaces.Create(ctx, workspace); err != nil {
		return false, storeErr("create", "workspace", err)
	}
	s.log.InfoContext(ctx, "seed: created admin workspace", "workspaceId", workspace.ID)

	// Step 4: the OWNER role must exist from reconciliation. Its absence is
	// an ordering violation between the two phases and fails loudly.
	ownerRole, err := s.roles.FindByName(ctx, models.RoleOwner)
	if err != nil {
		return false, storeErr("find", "role", err)
	}
	if ownerRole == nil {
		return false, &MissingDependencyError{Entity: "role", Key: string(models.RoleOwner)}
	}

	// Step 5: the owning Membership.
	member := &models.Member{
		UserID:      user.ID,
		WorkspaceID: workspace.ID,
		RoleID:      ownerRole.ID,
		JoinedAt:    s.now(),
	}
	if err := s.members.Create(ctx, member); err != nil {
		return false, storeErr("create", "member", err)
	}
	s.log.InfoContext(ctx, "seed: created admin membership", "role", string(models.RoleOwner))

	// Step 6: back-reference the workspace on the user. Two-phase write:
	// the workspace needed the user's id first.
	ws := workspace.ID
	user.CurrentWorkspaceID = &ws
	if err := s.users.Save(ctx, user); err != nil {
		return false, storeErr("save", "user", err)
	}
	s.log.InfoContext(ctx, "seed: admin provisioned", "email", user.Email)

	return true, nil
}
