package examples

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// ExampleRow is one example persisted through gorm.
type ExampleRow struct {
	ID        string         `gorm:"column:id;primaryKey;size:26" json:"id"`
	Kind      string         `gorm:"column:kind;size:32;not null;index" json:"kind"`
	Topic     string         `gorm:"column:topic;not null;index" json:"topic"`
	Content   datatypes.JSON `gorm:"column:content;not null" json:"content"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;index" json:"created_at"`
}

func (ExampleRow) TableName() string { return "user_examples" }

// SQLBackend stores one row per example in sqlite or postgres.
type SQLBackend struct {
	db   *gorm.DB
	name string
}

func newGormLogger() gormLogger.Interface {
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

func NewSQLiteBackend(path string) (*SQLBackend, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path required")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newGormLogger()})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	return newSQLBackend(db, "sqlite")
}

func NewPostgresBackend(dsn string) (*SQLBackend, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn required")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}
	return newSQLBackend(db, "postgres")
}

func newSQLBackend(db *gorm.DB, name string) (*SQLBackend, error) {
	if err := db.AutoMigrate(&ExampleRow{}); err != nil {
		return nil, fmt.Errorf("migrate user_examples: %w", err)
	}
	return &SQLBackend{db: db, name: name}, nil
}

func (b *SQLBackend) Name() string { return b.name }

func (b *SQLBackend) Load(ctx context.Context) (Collection, error) {
	var rows []ExampleRow
	if err := b.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return NewCollection(), fmt.Errorf("load user_examples: %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		var c Content
		if err := json.Unmarshal(r.Content, &c); err != nil {
			return NewCollection(), fmt.Errorf("decode example %s: %w", r.ID, err)
		}
		entries = append(entries, Entry{ID: r.ID, Kind: Kind(r.Kind), Topic: r.Topic, Content: c, CreatedAt: r.CreatedAt})
	}
	return fromEntries(entries), nil
}

func (b *SQLBackend) Append(ctx context.Context, e Entry, _ Collection) error {
	raw, err := json.Marshal(e.Content)
	if err != nil {
		return fmt.Errorf("encode example: %w", err)
	}
	row := ExampleRow{
		ID:        e.ID,
		Kind:      string(e.Kind),
		Topic:     e.Topic,
		Content:   datatypes.JSON(raw),
		CreatedAt: e.CreatedAt,
	}
	if err := b.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert example: %w", err)
	}
	return nil
}

func (b *SQLBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
