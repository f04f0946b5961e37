package repository

import (
	"context"

	"gorm.io/gorm"

	"rowtrack/entities"
)

type TractRecordRepository interface {
	BulkInsert(ctx context.Context, tx *gorm.DB, rows []entities.TractRecord) error
}
