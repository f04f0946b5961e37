package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"rowtrack/entities"
	"rowtrack/pkg/logger"
	"rowtrack/pkg/tract/repository"
)

// insertBatchSize keeps each INSERT under the bind-variable limit of
// SQLite (32766) and Postgres (65535) at fifteen columns per row.
const insertBatchSize = 500

type tractRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) repository.TractRecordRepository {
	return &tractRepo{db: db, log: baseLog.With("repo", "TractRecordRepo")}
}

func (r *tractRepo) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

// BulkInsert writes rows in batches of insertBatchSize on the given
// connection, so inside a transaction it stays all-or-nothing. An empty
// slice is a no-op.
func (r *tractRepo) BulkInsert(ctx context.Context, tx *gorm.DB, rows []entities.TractRecord) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.conn(ctx, tx).CreateInBatches(&rows, insertBatchSize).Error; err != nil {
		r.log.Error("bulk insert failed", "rows", len(rows), "error", err)
		return err
	}
	return nil
}
