// Package spreadsheet reads flat project records from the sheets land agents
// keep (.xlsx, or .csv and .html table exports of them).
package spreadsheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/xuri/excelize/v2"

	"rowtrack/pkg/project/types"
)

var ErrNoNameColumn = errors.New("sheet has no stakeholder name column")

type column struct {
	aliases []string
	set     func(r *types.RawProjectRecord, v string) error
}

// columns[0] must stay the name column.
var columns = []column{
	{[]string{"name", "stakeholder", "stakeholder_name", "owner", "owner_name"}, textInto(func(r *types.RawProjectRecord, v string) { r.Name = v })},
	{[]string{"street_address", "street", "address", "site_address"}, textInto(func(r *types.RawProjectRecord, v string) { r.StreetAddress = v })},
	{[]string{"mailing_address", "mailing", "mail_address"}, textInto(func(r *types.RawProjectRecord, v string) { r.MailingAddress = v })},
	{[]string{"phone_number", "phone", "telephone"}, textInto(func(r *types.RawProjectRecord, v string) { r.PhoneNumber = v })},
	{[]string{"email", "e-mail", "email_address"}, textInto(func(r *types.RawProjectRecord, v string) { r.Email = v })},
	{[]string{"is_person", "person", "individual"}, boolInto(func(r *types.RawProjectRecord, b bool) { r.IsPerson = b })},
	{[]string{"stakeholder_comments", "comments", "owner_comments"}, textInto(func(r *types.RawProjectRecord, v string) { r.StakeholderComments = v })},
	{[]string{"stakeholder_status", "status", "contact_status"}, textInto(func(r *types.RawProjectRecord, v string) {
		r.StakeholderStatus = strings.ToUpper(strings.ReplaceAll(v, " ", "_"))
	})},
	{[]string{"contacted"}, boolInto(func(r *types.RawProjectRecord, b bool) { r.Contacted = b })},
	{[]string{"consultation", "consulted"}, boolInto(func(r *types.RawProjectRecord, b bool) { r.Consultation = b })},
	{[]string{"attempts", "contact_attempts"}, intInto(func(r *types.RawProjectRecord, n int) { r.Attempts = n })},
	{[]string{"follow_up", "followup"}, boolInto(func(r *types.RawProjectRecord, b bool) { r.FollowUp = b })},

	{[]string{"tract", "tract_no", "tract_number", "tract #"}, intInto(func(r *types.RawProjectRecord, n int) { r.Tract = n })},
	{[]string{"position", "quarter", "legal_position"}, textInto(func(r *types.RawProjectRecord, v string) { r.Position = strPtr(v) })},
	{[]string{"pin", "parcel", "parcel_id", "pid"}, textInto(func(r *types.RawProjectRecord, v string) { r.Pin = v })},
	{[]string{"interest", "ownership", "ownership_interest"}, textInto(func(r *types.RawProjectRecord, v string) { r.Interest = strPtr(v) })},
	{[]string{"structure", "structures"}, boolInto(func(r *types.RawProjectRecord, b bool) { r.Structure = b })},
	{[]string{"occupants"}, intInto(func(r *types.RawProjectRecord, n int) { r.Occupants = n })},
	{[]string{"works_land", "workland", "farms_land"}, boolInto(func(r *types.RawProjectRecord, b bool) { r.WorksLand = b })},
	{[]string{"tract_comments", "parcel_comments"}, textInto(func(r *types.RawProjectRecord, v string) { r.TractComments = v })},
	{[]string{"pipeline_status", "pipeline"}, textInto(func(r *types.RawProjectRecord, v string) { r.PipelineStatus = v })},
	{[]string{"commodity", "crop"}, textInto(func(r *types.RawProjectRecord, v string) { r.Commodity = v })},
	{[]string{"page_number", "page", "page_no"}, intInto(func(r *types.RawProjectRecord, n int) { r.PageNumber = n })},
	{[]string{"keepdelete", "keep_delete", "keep"}, boolInto(func(r *types.RawProjectRecord, b bool) { r.Keepdelete = b })},
}

// ReadProjectRecords picks the reader from the file extension. sheet is
// ignored for CSV and HTML; an empty sheet means the first one in the workbook.
func ReadProjectRecords(path, sheet string) ([]types.RawProjectRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f)
	case ".xlsx", ".xlsm":
		return ReadXLSX(f, sheet)
	case ".html", ".htm":
		return ReadHTML(f)
	default:
		return nil, fmt.Errorf("unsupported file type %q (want .xlsx, .csv or .html)", filepath.Ext(path))
	}
}

func ReadXLSX(r io.Reader, sheet string) ([]types.RawProjectRecord, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	if sheet == "" {
		sheets := x.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := x.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	return parseRows(rows)
}

func ReadCSV(r io.Reader) ([]types.RawProjectRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return parseRows(rows)
}

// ReadHTML reads the first <table> of an HTML export. Header cells may be
// <th> or <td>.
func ReadHTML(r io.Reader) ([]types.RawProjectRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, errors.New("document has no table")
	}
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, strings.Join(strings.Fields(cell.Text()), " "))
		})
		if len(row) > 0 {
			rows = append(rows, row)
		}
	})
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]types.RawProjectRecord, error) {
	out := make([]types.RawProjectRecord, 0)
	if len(rows) == 0 {
		return out, nil
	}
	head := rows[0]

	hmap := map[string]int{}
	for i, h := range head {
		if _, dup := hmap[norm(h)]; !dup {
			hmap[norm(h)] = i
		}
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[norm(k)]; ok {
				return idx
			}
		}
		return -1
	}

	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = findAny(c.aliases...)
	}
	if idx[0] == -1 {
		return nil, fmt.Errorf("%w; found headers: %v", ErrNoNameColumn, head)
	}

	for n, row := range rows[1:] {
		get := func(i int) string {
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		var rec types.RawProjectRecord
		for i, c := range columns {
			v := get(idx[i])
			if v == "" {
				continue
			}
			if err := c.set(&rec, v); err != nil {
				// header is row 1
				return nil, fmt.Errorf("row %d column %q: %w", n+2, head[idx[i]], err)
			}
		}
		if rec.Name == "" && !rec.HasTract() {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

func strPtr(v string) *string { return &v }

func textInto(assign func(*types.RawProjectRecord, string)) func(*types.RawProjectRecord, string) error {
	return func(r *types.RawProjectRecord, v string) error {
		assign(r, v)
		return nil
	}
}

func boolInto(assign func(*types.RawProjectRecord, bool)) func(*types.RawProjectRecord, string) error {
	return func(r *types.RawProjectRecord, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		assign(r, b)
		return nil
	}
}

func intInto(assign func(*types.RawProjectRecord, int)) func(*types.RawProjectRecord, string) error {
	return func(r *types.RawProjectRecord, v string) error {
		n, err := parseInt(v)
		if err != nil {
			return err
		}
		assign(r, n)
		return nil
	}
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "true", "t", "yes", "y", "1", "x":
		return true, nil
	case "false", "f", "no", "n", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a yes/no value: %q", v)
}

// parseInt accepts whole numbers written as floats ("12.0"), which is how
// numeric cells come back from some exports.
func parseInt(v string) (int, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not a whole number: %q", v)
	}
	return int(f), nil
}
