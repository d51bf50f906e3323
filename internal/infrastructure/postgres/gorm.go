package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
	"github.com/jhoicas/catalog-api/pkg/logger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenGorm abre GORM sobre el pool pgx (misma configuración, mismo límite de conexiones).
func OpenGorm(pool *pgxpool.Pool, log *logger.Logger, level string) (*gorm.DB, error) {
	sqlDB := stdlib.OpenDBFromPool(pool)
	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), GormConfig(log, level))
	if err != nil {
		return nil, fmt.Errorf("abrir gorm: %w", err)
	}
	return db, nil
}

// GormConfig configuración común de GORM (también la usan los tests con SQLite).
func GormConfig(log *logger.Logger, level string) *gorm.Config {
	return &gorm.Config{
		Logger:         NewGormLogger(log, level),
		TranslateError: true,
	}
}

// Migrate crea o actualiza las tablas del catálogo y de usuarios.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Category{}, &entity.Product{}, &entity.User{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
