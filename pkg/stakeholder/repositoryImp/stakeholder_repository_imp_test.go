package repositoryImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rowtrack/entities"
	"rowtrack/pkg/testutil"
)

func TestFindByIDPreloads(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	p := testutil.SeedProject(t, db, "Line 3")
	s := testutil.SeedStakeholder(t, db, p.ID, "Ada")
	testutil.SeedTractRecord(t, db, s.ID, 4, "P-4")
	testutil.SeedTractRecord(t, db, s.ID, 5, "P-5")
	repo := New(db, testutil.Logger(t))

	got, err := repo.FindByID(ctx, nil, s.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StakeholderNotContacted, got.StakeholderStatus)
	require.Len(t, got.TractRecords, 2)
	assert.Equal(t, "P-4", got.TractRecords[0].Pin)
	assert.Nil(t, got.Package)

	_, err = repo.FindByID(ctx, nil, s.ID+100)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestUpdateWritesZeroValues(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	p := testutil.SeedProject(t, db, "Line 3")
	s := testutil.SeedStakeholder(t, db, p.ID, "Ada")
	repo := New(db, testutil.Logger(t))

	require.NoError(t, repo.Update(ctx, nil, s.ID, map[string]any{"is_person": false, "attempts": 0}))

	got, err := repo.FindByID(ctx, nil, s.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPerson)
	assert.Zero(t, got.Attempts)
	assert.Equal(t, "Ada", got.Name)

	err = repo.Update(ctx, nil, s.ID+100, map[string]any{"attempts": 3})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, repo.Update(ctx, nil, s.ID+100, nil))
}

func TestAttachPackageReplacesPrevious(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	p := testutil.SeedProject(t, db, "Line 3")
	s := testutil.SeedStakeholder(t, db, p.ID, "Ada")
	repo := New(db, testutil.Logger(t))

	d := &entities.Delivery{ProjectID: p.ID, Date: "2024-05-01", Status: entities.DeliveryPlanned}
	require.NoError(t, db.Create(d).Error)
	first := &entities.Package{DeliveryID: d.ID}
	second := &entities.Package{DeliveryID: d.ID}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	require.NoError(t, repo.AttachPackage(ctx, nil, s, first))
	require.NoError(t, repo.AttachPackage(ctx, nil, s, second))

	got, err := repo.FindByID(ctx, nil, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Package)
	assert.Equal(t, second.ID, got.Package.ID)

	var old entities.Package
	require.NoError(t, db.First(&old, first.ID).Error)
	assert.Nil(t, old.StakeholderID)
}
