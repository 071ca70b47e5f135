package storage

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"todosheet/domain"
)

// ErrNotConfigured reports missing spreadsheet configuration. It is
// returned by New so a misconfigured process fails at startup instead of
// on the first request.
var ErrNotConfigured = errors.New("spreadsheet id or credentials not configured")

// Storage reads and writes task rows in a single worksheet of a Google
// spreadsheet. Row numbers are 1-based and include the header as row 1.
// Every method is one synchronous round trip; nothing is cached.
type Storage struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	sheetID       int64
}

// New builds a Storage for the given spreadsheet. An empty sheetName
// selects the first worksheet. The worksheet's numeric id is resolved
// once here; row deletion needs it.
func New(ctx context.Context, spreadsheetID, credentialsPath, sheetName string) (*Storage, error) {
	if spreadsheetID == "" || credentialsPath == "" {
		return nil, ErrNotConfigured
	}
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	s := &Storage{svc: svc, spreadsheetID: spreadsheetID, sheetName: sheetName}
	if err := s.resolveSheet(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Storage) resolveSheet(ctx context.Context) error {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("spreadsheet metadata: %w", err)
	}
	if len(meta.Sheets) == 0 {
		return fmt.Errorf("spreadsheet %s has no sheets", s.spreadsheetID)
	}
	if s.sheetName == "" {
		p := meta.Sheets[0].Properties
		s.sheetName = p.Title
		s.sheetID = p.SheetId
		return nil
	}
	for _, sh := range meta.Sheets {
		if sh.Properties.Title == s.sheetName {
			s.sheetID = sh.Properties.SheetId
			return nil
		}
	}
	return fmt.Errorf("sheet %q not found in spreadsheet %s", s.sheetName, s.spreadsheetID)
}

// ReadRows returns the full table, header included, as strings.
func (s *Storage) ReadRows(ctx context.Context) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, cellString(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// AppendRow adds a row after the last non-empty row of the sheet.
func (s *Storage) AppendRow(ctx context.Context, row []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{rowCells(row)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	return nil
}

// UpdateRange overwrites the rows from startRow through endRow, both
// 1-based and inclusive. This is a full replace of each row's fixed
// column range, not a merge.
func (s *Storage) UpdateRange(ctx context.Context, startRow, endRow int, rows [][]string) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = rowCells(row)
	}
	vr := &sheets.ValueRange{Values: values}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rangeForRows(s.sheetName, startRow, endRow), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("update rows %d-%d: %w", startRow, endRow, err)
	}
	return nil
}

// UpdateRow overwrites every cell of the given 1-based row.
func (s *Storage) UpdateRow(ctx context.Context, rowNum int, row []string) error {
	return s.UpdateRange(ctx, rowNum, rowNum, [][]string{row})
}

// DeleteRow removes the given 1-based row. Rows below it shift up by
// one, so callers must not reuse row numbers across a delete.
func (s *Storage) DeleteRow(ctx context.Context, rowNum int) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    s.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowNum - 1),
					EndIndex:   int64(rowNum),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete row %d: %w", rowNum, err)
	}
	return nil
}

// EnsureHeader writes the fixed header row into an empty sheet. An
// existing header, or any other row 1 content, is left untouched.
func (s *Storage) EnsureHeader(ctx context.Context) error {
	rows, err := s.ReadRows(ctx)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		return nil
	}
	return s.UpdateRow(ctx, 1, domain.HeaderRow())
}

// rangeForRows builds the A1 range covering whole task rows.
func rangeForRows(sheetName string, startRow, endRow int) string {
	lastCol := rune('A' + domain.ColumnCount - 1)
	return fmt.Sprintf("%s!A%d:%c%d", sheetName, startRow, lastCol, endRow)
}

func rowCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

// cellString converts a sheet cell to its string form. The values API
// hands back strings for RAW-written cells, but manually edited cells
// can come back as numbers or bools.
func cellString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
