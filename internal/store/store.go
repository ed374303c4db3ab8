// Package store is the gorm-backed entity store. Each entity kind gets a
// narrow repository with find-one/create/save operations; uniqueness
// constraints live on the schema, and password hashing happens on the user
// write path so callers never persist plaintext.
package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ankitsinha2506/TeamSync-Backend/internal/config"
	"github.com/Ankitsinha2506/TeamSync-Backend/internal/models"
)

// Stores bundles the per-entity repositories sharing one gorm handle.
type Stores struct {
	Roles      *RoleStore
	Users      *UserStore
	Accounts   *AccountStore
	Workspaces *WorkspaceStore
	Members    *MemberStore
	Projects   *ProjectStore
	Tasks      *TaskStore
}

// New wires every repository onto db.
func New(db *gorm.DB) *Stores {
	return &Stores{
		Roles:      &RoleStore{db: db},
		Users:      &UserStore{db: db},
		Accounts:   &AccountStore{db: db},
		Workspaces: &WorkspaceStore{db: db},
		Members:    &MemberStore{db: db},
		Projects:   &ProjectStore{db: db},
		Tasks:      &TaskStore{db: db},
	}
}

// Open connects to Postgres using the given config. Gorm's own logger is
// silenced; request logging happens at the HTTP layer.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := DSN(cfg)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	return db, nil
}

// DSN builds the Postgres connection string from cfg.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DB, cfg.SSLMode,
	)
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Account{},
		&models.Workspace{},
		&models.Member{},
		&models.Project{},
		&models.Task{},
	)
}
