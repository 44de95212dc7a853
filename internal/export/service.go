package export

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docfields/internal/statement"
)

// SheetName is the single worksheet of a statement export.
const SheetName = "Services"

var headers = []string{
	"Date",
	"Name",
	"RG",
	"Tractor Plate",
	"Trailer Plate",
	"Value",
}

// Service produces XLSX workbooks for parsed statements.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// StatementXLSX returns an XLSX workbook (as bytes) with one row per service record, in order.
func (s *Service) StatementXLSX(records []statement.Record) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// rename the default sheet instead of leaving an empty "Sheet1" behind
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	idx, _ := f.GetSheetIndex(SheetName)
	f.SetActiveSheet(idx)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	for i, r := range records {
		row := i + 2
		write := func(col int, v string) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(SheetName, cell, v)
		}
		write(1, r.Date)
		write(2, truncate(r.Name, 120))
		write(3, r.RG)
		write(4, r.TractorPlate)
		write(5, r.TrailerPlate)
		write(6, r.Value)
	}

	_ = f.SetColWidth(SheetName, "A", "A", 12) // date
	_ = f.SetColWidth(SheetName, "B", "B", 36) // name
	_ = f.SetColWidth(SheetName, "C", "C", 14) // rg
	_ = f.SetColWidth(SheetName, "D", "E", 14) // plates
	_ = f.SetColWidth(SheetName, "F", "F", 14) // value

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("statement xlsx ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// WriteStatementXLSX writes the workbook for records to path.
func (s *Service) WriteStatementXLSX(path string, records []statement.Record) error {
	data, err := s.StatementXLSX(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
