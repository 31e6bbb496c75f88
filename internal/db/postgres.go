package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/envutil"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	host := envutil.GetEnv("POSTGRES_HOST", "localhost", log)
	port := envutil.GetEnv("POSTGRES_PORT", "5432", log)
	user := envutil.GetEnv("POSTGRES_USER", "postgres", log)
	password := envutil.GetEnv("POSTGRES_PASSWORD", "", log)
	name := envutil.GetEnv("POSTGRES_NAME", "devlink", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)

	serviceLog.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := Migrate(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

// Migrate creates or updates every table and wires the ownership cascades.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&types.User{},
		&types.UserToken{},
		&types.Portfolio{},
		&types.About{},
		&types.Skill{},
		&types.Project{},
		&types.Experience{},
		&types.Education{},
		&types.Certification{},
	); err != nil {
		return err
	}

	// Ownership cascades: deleting a user removes its sessions and
	// portfolios; deleting a portfolio removes every dependent row.
	cascades := []struct {
		table, constraint, column, refTable string
	}{
		{"user_token", "fk_user_token_user_id", "user_id", "user"},
		{"portfolio", "fk_portfolio_user_id", "user_id", "user"},
		{"about", "fk_about_portfolio_id", "portfolio_id", "portfolio"},
		{"skill", "fk_skill_portfolio_id", "portfolio_id", "portfolio"},
		{"project", "fk_project_portfolio_id", "portfolio_id", "portfolio"},
		{"experience", "fk_experience_portfolio_id", "portfolio_id", "portfolio"},
		{"education", "fk_education_portfolio_id", "portfolio_id", "portfolio"},
		{"certification", "fk_certification_portfolio_id", "portfolio_id", "portfolio"},
	}
	for _, c := range cascades {
		stmt := fmt.Sprintf(`
			DO $$ BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
					ALTER TABLE "%s"
					ADD CONSTRAINT "%s"
					FOREIGN KEY ("%s")
					REFERENCES "%s"("id")
					ON DELETE CASCADE;
				END IF;
			END $$;`,
			c.constraint, c.table, c.constraint, c.column, c.refTable)
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add %s: %w", c.constraint, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
