package statement

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestReader_Read_CSV(t *testing.T) {
	reader := NewReader(nil)

	t.Run("parses headered csv with shuffled columns", func(t *testing.T) {
		csv := strings.Join([]string{
			"Profit,Order Ref,Invoice No",
			"250.00,1,INV-001",
			"\"Rs. 1,250.50\",2,INV-001",
		}, "\n")

		rows, skipped, err := reader.Read("statement.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Zero(t, skipped)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(1), rows[0].SellerReference)
		assert.Equal(t, "INV-001", rows[0].InvoiceNumber)
		assert.True(t, rows[0].Profit.Equal(mustDecimal(t, "250")))
		assert.True(t, rows[1].Profit.Equal(mustDecimal(t, "1250.50")))
	})

	t.Run("falls back to positional columns without a header", func(t *testing.T) {
		csv := "7,INV-003,99.5\n8,INV-003,100\n"

		rows, skipped, err := reader.Read("statement.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Zero(t, skipped)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(7), rows[0].SellerReference)
		assert.Equal(t, "INV-003", rows[0].InvoiceNumber)
	})

	t.Run("skips unparseable rows without failing the batch", func(t *testing.T) {
		csv := strings.Join([]string{
			"Reference,Invoice,Profit",
			"1,INV-001,250",
			"totals,,garbage",
			"2,INV-001,300",
			"3,INV-001,",
		}, "\n")

		rows, skipped, err := reader.Read("statement.csv", strings.NewReader(csv))

		require.NoError(t, err)
		assert.Equal(t, 2, skipped)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(1), rows[0].SellerReference)
		assert.Equal(t, int64(2), rows[1].SellerReference)
	})

	t.Run("accepts spreadsheet numerics as references", func(t *testing.T) {
		csv := "Reference,Invoice,Profit\n3.0,INV-001,10\n"

		rows, _, err := reader.Read("statement.csv", strings.NewReader(csv))

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(3), rows[0].SellerReference)
	})

	t.Run("fails when nothing parses", func(t *testing.T) {
		csv := "Reference,Invoice,Profit\nnope,,nope\n"

		_, skipped, err := reader.Read("statement.csv", strings.NewReader(csv))

		assert.ErrorIs(t, err, ErrEmptyStatement)
		assert.Equal(t, 1, skipped)
	})
}

func TestReader_Read_XLSX(t *testing.T) {
	reader := NewReader(nil)

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]interface{}{"Reference", "Invoice", "Profit"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]interface{}{1, "INV-001", 250}))
	require.NoError(t, wb.SetSheetRow(sheet, "A3", &[]interface{}{2, "INV-001", 255.5}))

	var buf bytes.Buffer
	require.NoError(t, wb.Write(&buf))

	rows, skipped, err := reader.Read("statement.xlsx", &buf)

	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].SellerReference)
	assert.True(t, rows[1].Profit.Equal(mustDecimal(t, "255.5")))
}

func TestReader_Read_UnsupportedFormat(t *testing.T) {
	reader := NewReader(nil)

	_, _, err := reader.Read("statement.pdf", strings.NewReader("x"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
