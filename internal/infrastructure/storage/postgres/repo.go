package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"dogweb/internal/domain"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(dsn string) (*PostgresRepository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Одно соединение на процесс, как и у in-memory хранилища
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Initialize(ctx context.Context) error {
	db := r.db.WithContext(ctx)

	if err := db.AutoMigrate(&domain.Entry{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Таблица переживает рестарт, поэтому существующая строка не ошибка
	seed := domain.Entry{ID: domain.SeedEntryID, Name: domain.SeedEntryName}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return fmt.Errorf("insert seed entry: %w", err)
	}

	return nil
}

func (r *PostgresRepository) LookupNameByID(ctx context.Context, id int64) (string, error) {
	var entry domain.Entry

	err := r.db.WithContext(ctx).Select("name").Where("id = ?", id).Take(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrEntryNotFound
		}
		return "", domain.NewDatabaseError("lookup", err)
	}

	return entry.Name, nil
}

func (r *PostgresRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
