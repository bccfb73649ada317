package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// entry is one persisted key of a schema.
type entry struct {
	Schema    string `gorm:"column:schema_id;primaryKey"`
	Key       string `gorm:"column:name;primaryKey"`
	Value     bool
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

func (entry) TableName() string { return "settings" }

// SQLStore persists settings in a SQLite database through gorm.
type SQLStore struct {
	db     *gorm.DB
	schema Schema
	logger *slog.Logger
}

// OpenSQLStore opens (creating if needed) the database at path.
func OpenSQLStore(path string, schema Schema, logger *slog.Logger) (*SQLStore, error) {
	if path == "" {
		return nil, errors.New("settings: empty database path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("settings: create dir: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("settings: open %s: %w", path, err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		if sqlDB, derr := db.DB(); derr == nil {
			_ = sqlDB.Close()
		}
		return nil, fmt.Errorf("settings: migrate: %w", err)
	}
	return &SQLStore{db: db, schema: schema, logger: logger}, nil
}

func (s *SQLStore) Bool(key string) (bool, error) {
	def, err := s.schema.lookup(key)
	if err != nil {
		return false, fmt.Errorf("%w: %s", err, key)
	}
	var e entry
	err = s.db.Where("schema_id = ? AND name = ?", s.schema.ID, key).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("settings: read %s: %w", key, err)
	}
	return e.Value, nil
}

func (s *SQLStore) SetBool(key string, v bool) error {
	if _, err := s.schema.lookup(key); err != nil {
		return fmt.Errorf("%w: %s", err, key)
	}
	e := entry{Schema: s.schema.ID, Key: key, Value: v, UpdatedAt: time.Now().Unix()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "schema_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("settings: write %s: %w", key, err)
	}
	if s.logger != nil {
		s.logger.Debug("setting stored", "schema", s.schema.ID, "key", key, "value", v)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

var _ Backend = (*SQLStore)(nil)
