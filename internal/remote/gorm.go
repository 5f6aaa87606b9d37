package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// document is the single-table representation of the keyed document
// capability on Postgres: one JSONB payload per (collection, doc id).
type document struct {
	Collection string `gorm:"primaryKey;type:varchar(40)"`
	DocID      string `gorm:"primaryKey;type:varchar(60)"`
	Data       []byte `gorm:"type:jsonb;not null"`
}

func (document) TableName() string { return "documents" }

// GormStore implements Store on Postgres through GORM.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the documents table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("remote: migrate documents: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) LoadCollection(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var rows []document
	err := s.db.WithContext(ctx).Where("collection = ?", collection).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("remote: load %s: %w", collection, err)
	}
	docs := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, json.RawMessage(row.Data))
	}
	return docs, nil
}

func (s *GormStore) LoadDocument(ctx context.Context, collection, id string) (json.RawMessage, error) {
	var row document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("remote: load %s/%s: %w", collection, id, err)
	}
	return json.RawMessage(row.Data), nil
}

func (s *GormStore) PutDocument(ctx context.Context, collection, id string, value any) error {
	data, err := encode(value)
	if err != nil {
		return fmt.Errorf("remote: encode %s/%s: %w", collection, id, err)
	}
	row := document{Collection: collection, DocID: id, Data: data}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("remote: put %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *GormStore) PatchDocument(ctx context.Context, collection, id string, partial map[string]any) error {
	existing, err := s.LoadDocument(ctx, collection, id)
	if err != nil && err != ErrNotFound {
		return err
	}
	merged, err := mergeDoc(existing, partial)
	if err != nil {
		return fmt.Errorf("remote: patch %s/%s: %w", collection, id, err)
	}
	return s.PutDocument(ctx, collection, id, json.RawMessage(merged))
}

func (s *GormStore) DeleteDocument(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", collection, id).
		Delete(&document{}).Error
	if err != nil {
		return fmt.Errorf("remote: delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *GormStore) QueryEquality(ctx context.Context, collection, field string, value any) ([]json.RawMessage, error) {
	var rows []document
	err := s.db.WithContext(ctx).
		Where("collection = ? AND data ->> ? = ?", collection, field, fmt.Sprint(value)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("remote: query %s.%s: %w", collection, field, err)
	}
	docs := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, json.RawMessage(row.Data))
	}
	return docs, nil
}
