package excel_parser_service

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/init-pkg/contacts-uploader/domain/app"

	"github.com/xuri/excelize/v2"
)

// column positions on the first sheet, zero based
const (
	colId = iota
	colFirstName
	colLastName
	colAreaCode
	colPhone
	colMessage
)

func (this *ExcelParserService) parse(ctx context.Context, file []byte) ([]app.ContactRow, error) {
	this.log.InfoContext(ctx, "Excel parsing started", "size", len(file))

	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		this.log.WarnContext(ctx, "failed to open workbook", "error", err)
		return nil, fmt.Errorf("%w: %v", app.ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, app.ErrSheetNotFound
	}

	grid, err := getGrid(f, sheets[0])
	if err != nil {
		this.log.WarnContext(ctx, "failed to read first sheet", "sheet", sheets[0], "error", err)
		return nil, fmt.Errorf("%w: %v", app.ErrSheetNotFound, err)
	}

	var sentAt string
	if this.opts.StampSentAt {
		sentAt = this.opts.Now().Format(app.SentAtLayout)
	}

	rows := make([]app.ContactRow, 0, len(grid))
	for i, cells := range grid {
		// first row is the header
		if i == 0 || isEmptyRow(cells) {
			continue
		}

		row := buildRow(cells)
		if sentAt != "" {
			stamp := sentAt
			row.SentAt = &stamp
		}
		rows = append(rows, row)
	}

	this.log.InfoContext(ctx, "Excel parsing completed successfully",
		"sheet", sheets[0],
		"rowCount", len(rows))

	return rows, nil
}

func getGrid(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	for i := range rows {
		for j, cell := range rows[i] {
			rows[i][j] = strings.TrimSpace(cell)
		}
	}

	return rows, nil
}

func buildRow(cells []string) app.ContactRow {
	var (
		firstName = ProperCase(cellAt(cells, colFirstName))
		lastName  = ProperCase(cellAt(cells, colLastName))
	)

	return app.ContactRow{
		Id:        parseId(cellAt(cells, colId)),
		FirstName: firstName,
		LastName:  lastName,
		FullName:  firstName + " " + lastName,
		AreaCode:  cellAt(cells, colAreaCode),
		Phone:     cellAt(cells, colPhone),
		Message:   cellAt(cells, colMessage),
	}
}

func cellAt(cells []string, idx int) string {
	if idx < len(cells) {
		return cells[idx]
	}
	return ""
}

func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if cell != "" {
			return false
		}
	}
	return true
}

// parseId accepts numeric cells; anything else leaves the id unset.
func parseId(raw string) *float64 {
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(id, 0) || math.IsNaN(id) {
		return nil
	}
	return &id
}
