package repository

import (
	"context"
	"errors"
	"time"

	"mixto_gestao/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DocumentModel is the gorm model of a stored collection document.
type DocumentModel struct {
	Key       string         `gorm:"primaryKey;size:191"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

func (DocumentModel) TableName() string {
	return "documents"
}

// PostgresDocumentStore keeps documents in a jsonb column through gorm.
type PostgresDocumentStore struct {
	db *gorm.DB
}

var _ interfaces.IDocumentStore = (*PostgresDocumentStore)(nil)

func NewPostgresDocumentStore(db *gorm.DB) *PostgresDocumentStore {
	return &PostgresDocumentStore{db: db}
}

func (s *PostgresDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var m DocumentModel
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(m.Payload), true, nil
}

func (s *PostgresDocumentStore) Put(ctx context.Context, key string, payload []byte) error {
	m := DocumentModel{Key: key, Payload: datatypes.JSON(payload), UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&m).Error
}
