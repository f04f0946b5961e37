package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"rowtrack/entities"
	"rowtrack/pkg/delivery/repository"
	"rowtrack/pkg/logger"
)

const dateLayout = "2006-01-02"

type deliveryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, baseLog *logger.Logger) repository.DeliveryRepository {
	return &deliveryRepo{db: db, log: baseLog.With("repo", "DeliveryRepo")}
}

func conn(ctx context.Context, db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

func (r *deliveryRepo) Create(ctx context.Context, tx *gorm.DB, d *entities.Delivery) error {
	return conn(ctx, r.db, tx).Omit("Packages").Create(d).Error
}

func (r *deliveryRepo) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*entities.Delivery, error) {
	var out entities.Delivery
	err := conn(ctx, r.db, tx).
		Preload("Packages", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&out, id).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByProject returns deliveries ordered by date, bounded inclusively by
// from and to when they are set.
func (r *deliveryRepo) ListByProject(ctx context.Context, tx *gorm.DB, projectID uint, from, to *time.Time) ([]entities.Delivery, error) {
	q := conn(ctx, r.db, tx).Model(&entities.Delivery{}).Where("project_id = ?", projectID)
	if from != nil {
		q = q.Where("date >= ?", from.Format(dateLayout))
	}
	if to != nil {
		q = q.Where("date <= ?", to.Format(dateLayout))
	}
	list := make([]entities.Delivery, 0)
	return list, q.Preload("Packages").Order("date asc, id asc").Find(&list).Error
}

func (r *deliveryRepo) Update(ctx context.Context, tx *gorm.DB, id uint, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	res := conn(ctx, r.db, tx).Model(&entities.Delivery{ID: id}).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *deliveryRepo) AttachPackage(ctx context.Context, tx *gorm.DB, d *entities.Delivery, pkg *entities.Package) error {
	if err := conn(ctx, r.db, tx).Model(d).Association("Packages").Append(pkg); err != nil {
		r.log.Error("attach package failed", "delivery_id", d.ID, "package_id", pkg.ID, "error", err)
		return err
	}
	return nil
}

type packageRepo struct {
	db *gorm.DB
}

func NewPackageRepo(db *gorm.DB) repository.PackageRepository { return &packageRepo{db: db} }

func (r *packageRepo) Create(ctx context.Context, tx *gorm.DB, p *entities.Package) error {
	return conn(ctx, r.db, tx).Create(p).Error
}
