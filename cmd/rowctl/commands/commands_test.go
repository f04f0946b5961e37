package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rowtrack/entities"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("LOG_MODE", "test")
	var out bytes.Buffer
	root := newRoot()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestImportCSV(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "rowctl.db")
	sheet := filepath.Join(dir, "records.csv")
	require.NoError(t, os.WriteFile(sheet, []byte(
		"Name,Mailing Address,Tract,PIN\n"+
			"Ada,PO Box 1,1,A-1\n"+
			"Ada,PO Box 1,2,A-2\n"+
			"Bo,PO Box 2,3,B-3\n"), 0o600))

	out, err := run(t, "import", sheet, "--name", "Pipeline A", "--survey-link", "http://x", "--db-path", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Project Record created successfully")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	var projects, stakeholders, tracts int64
	require.NoError(t, db.Model(&entities.Project{}).Count(&projects).Error)
	require.NoError(t, db.Model(&entities.Stakeholder{}).Count(&stakeholders).Error)
	require.NoError(t, db.Model(&entities.TractRecord{}).Count(&tracts).Error)
	assert.EqualValues(t, 1, projects)
	assert.EqualValues(t, 2, stakeholders)
	assert.EqualValues(t, 3, tracts)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestImportRequiresName(t *testing.T) {
	_, err := run(t, "import", "whatever.csv", "--db-path", filepath.Join(t.TempDir(), "x.db"))
	assert.ErrorContains(t, err, "--name")
}

func TestImportMissingFile(t *testing.T) {
	_, err := run(t, "import", filepath.Join(t.TempDir(), "nope.csv"), "--name", "P", "--db-path", filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "m.db")
	out, err := run(t, "migrate", "--db-path", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "schema up to date (sqlite)")
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestRejectsUnknownDriver(t *testing.T) {
	_, err := run(t, "migrate", "--db-driver", "mysql")
	assert.ErrorContains(t, err, "config")
}
