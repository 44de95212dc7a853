package export_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/docfields/internal/export"
	"github.com/joseph-ayodele/docfields/internal/statement"
)

var records = []statement.Record{
	{Date: "01/02/2024", Name: "JOHN DOE", RG: "12345678", TractorPlate: "ABC1D23", TrailerPlate: "DEF4G56", Value: "R$ 150,00", Role: "AGREGADO"},
	{Date: "01/02/2024", Name: "JANE ROE", RG: "87654321", TractorPlate: "XYZ9K81", Value: "R$ 200,00", Role: "CARRETEIRO"},
}

func TestStatementXLSX(t *testing.T) {
	b, err := export.NewService(nil).StatementXLSX(records)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{export.SheetName}, f.GetSheetList())
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Name", "RG", "Tractor Plate", "Trailer Plate", "Value"}, rows[0])
	assert.Equal(t, []string{"01/02/2024", "JOHN DOE", "12345678", "ABC1D23", "DEF4G56", "R$ 150,00"}, rows[1])
	// GetRows drops trailing empty cells only; the empty trailer sits between values
	assert.Equal(t, []string{"01/02/2024", "JANE ROE", "87654321", "XYZ9K81", "", "R$ 200,00"}, rows[2])
}

func TestStatementXLSX_Empty(t *testing.T) {
	b, err := export.NewService(nil).StatementXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteStatementXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servicos.xlsx")
	require.NoError(t, export.NewService(nil).WriteStatementXLSX(path, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	v, err := f.GetCellValue(export.SheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "JANE ROE", v)
}
