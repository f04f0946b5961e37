package spreadsheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "records.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadXLSXWithAliases(t *testing.T) {
	path := writeXLSX(t, "Sheet1", [][]any{
		{"Owner Name", "Mailing Address", "E-mail", "Tract No", "PIN", "Interest", "Is_Person", "Page", "Works Land", "Status"},
		{"Ada Farms", "PO Box 1", "ada@example.com", 101, "A-101", "1/2", "yes", 3, "N", "in progress"},
		{"Ada Farms", "PO Box 1", "", 102, "A-102", "", "yes", 3.0, "", ""},
		{"", "", "", "", "", "", "", "", "", ""},
		{"Bo Ranch", "PO Box 2", "", "", "", "", "no", "", "", ""},
	})

	recs, err := ReadProjectRecords(path, "")
	require.NoError(t, err)
	require.Len(t, recs, 3)

	first := recs[0]
	assert.Equal(t, "Ada Farms", first.Name)
	assert.Equal(t, "PO Box 1", first.MailingAddress)
	assert.Equal(t, "ada@example.com", first.Email)
	assert.Equal(t, 101, first.Tract)
	assert.Equal(t, "A-101", first.Pin)
	require.NotNil(t, first.Interest)
	assert.Equal(t, "1/2", *first.Interest)
	assert.True(t, first.IsPerson)
	assert.Equal(t, 3, first.PageNumber)
	assert.False(t, first.WorksLand)
	assert.Equal(t, "IN_PROGRESS", first.StakeholderStatus)

	assert.Nil(t, recs[1].Interest)
	assert.Equal(t, 3, recs[1].PageNumber)
	assert.False(t, recs[2].HasTract())
	assert.False(t, recs[2].IsPerson)
}

func TestReadXLSXNamedSheet(t *testing.T) {
	path := writeXLSX(t, "Owners", [][]any{
		{"name", "tract"},
		{"Cy", 7},
	})

	recs, err := ReadProjectRecords(path, "Owners")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 7, recs[0].Tract)

	_, err = ReadProjectRecords(path, "Missing")
	assert.Error(t, err)
}

func TestReadRejectsBadCells(t *testing.T) {
	path := writeXLSX(t, "Sheet1", [][]any{
		{"Name", "Tract", "Contacted"},
		{"Ada", 1, "yes"},
		{"Bo", "twelve", "no"},
	})

	_, err := ReadProjectRecords(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `row 3 column "Tract"`)

	_, err = ReadCSV(strings.NewReader("name,contacted\nAda,maybe\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `row 2 column "contacted"`)
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	body := "\uFEFFStakeholder,Mailing_Address,Tract,Position,Keep-Delete\n" +
		"Ada,PO Box 1,4,NE/4,x\n" +
		"Ada,PO Box 1,5,,\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	recs, err := ReadProjectRecords(path, "ignored")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.NotNil(t, recs[0].Position)
	assert.Equal(t, "NE/4", *recs[0].Position)
	assert.True(t, recs[0].Keepdelete)
	assert.Nil(t, recs[1].Position)
	assert.False(t, recs[1].Keepdelete)
}

func TestReadRequiresNameColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("tract,pin\n1,A\n"))
	assert.True(t, errors.Is(err, ErrNoNameColumn))
}

func TestReadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	require.NoError(t, os.WriteFile(path, []byte("name\nAda\n"), 0o600))
	_, err := ReadProjectRecords(path, "")
	assert.ErrorContains(t, err, "unsupported file type")
}

func TestParseInt(t *testing.T) {
	for in, want := range map[string]int{"0": 0, "12": 12, "12.0": 12, "-3": -3} {
		got, err := parseInt(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"1.5", "abc"} {
		_, err := parseInt(in)
		assert.Error(t, err, in)
	}
}

func TestReadHTMLTable(t *testing.T) {
	page := `<html><body>
<p>Assessor export</p>
<table>
  <thead><tr><th>Owner</th><th>Mailing Address</th><th>Tract #</th><th>Parcel</th><th>Occupants</th></tr></thead>
  <tbody>
    <tr><td>Ada   Farms</td><td>PO Box 1</td><td>11</td><td>A-11</td><td>2</td></tr>
    <tr><td>Bo Ranch</td><td>PO Box 2</td><td></td><td>B-7</td><td></td></tr>
  </tbody>
</table>
<table><tr><td>ignored</td></tr></table>
</body></html>`
	path := filepath.Join(t.TempDir(), "export.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))

	recs, err := ReadProjectRecords(path, "")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Ada Farms", recs[0].Name)
	assert.Equal(t, "A-11", recs[0].Pin)
	assert.Equal(t, 2, recs[0].Occupants)
	assert.Zero(t, recs[1].Tract)
	assert.True(t, recs[1].HasTract())

	_, err = ReadHTML(strings.NewReader("<p>no table</p>"))
	assert.ErrorContains(t, err, "no table")
}
