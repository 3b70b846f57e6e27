package statement

import (
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Khanjii4421/adnansoftware-sub000/internal/domain/invoice"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrUnsupportedFormat is returned for file types the reader cannot parse
var ErrUnsupportedFormat = errors.New("unsupported statement format, expected .csv or .xlsx")

// ErrEmptyStatement is returned when a file yields no parseable rows
var ErrEmptyStatement = errors.New("statement contains no parseable rows")

// Column synonyms for header detection. Sellers export statements from
// different tools, so the header row is matched loosely.
var (
	referenceSynonyms = []string{"reference", "ref", "ref no", "order ref", "order reference", "seller reference", "order no", "order number", "order id", "sr", "sr no"}
	invoiceSynonyms   = []string{"invoice", "invoice no", "invoice number", "invoice#", "bill", "bill no", "bill number"}
	profitSynonyms    = []string{"profit", "seller profit", "my profit", "margin", "commission", "amount"}
)

// Reader parses uploaded seller statements into matcher rows
type Reader struct {
	logger *zap.Logger
}

// NewReader creates a statement reader
func NewReader(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{logger: logger}
}

// Read parses a statement file into rows for the matcher. The format is
// picked by file extension. Unparseable rows are skipped with a warning and
// reported in the second return value; a bad row never fails the batch.
func (r *Reader) Read(filename string, f io.Reader) ([]invoice.StatementRow, int, error) {
	var (
		records [][]string
		err     error
	)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		records, err = readCSV(f)
	case ".xlsx", ".xlsm":
		records, err = readXLSX(f)
	default:
		return nil, 0, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, 0, err
	}

	rows, skipped := r.parseRecords(records)
	if len(rows) == 0 {
		return nil, skipped, ErrEmptyStatement
	}
	return rows, skipped, nil
}

func readCSV(f io.Reader) ([][]string, error) {
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

func readXLSX(f io.Reader) ([][]string, error) {
	wb, err := excelize.OpenReader(f)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyStatement
	}
	// the statement always lives on the first sheet
	return wb.GetRows(sheets[0])
}

// columnLayout maps statement columns to their index in a record
type columnLayout struct {
	reference int
	invoice   int
	profit    int
}

// defaultLayout is the positional fallback when no header row is found
var defaultLayout = columnLayout{reference: 0, invoice: 1, profit: 2}

func (r *Reader) parseRecords(records [][]string) ([]invoice.StatementRow, int) {
	if len(records) == 0 {
		return nil, 0
	}

	layout, hasHeader := detectHeader(records[0])
	if hasHeader {
		records = records[1:]
	}

	rows := make([]invoice.StatementRow, 0, len(records))
	skipped := 0
	for i, record := range records {
		row, err := parseRecord(record, layout)
		if err != nil {
			skipped++
			r.logger.Warn("skipping unparseable statement row",
				zap.Int("row", i+1),
				zap.Strings("record", record),
				zap.Error(err))
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped
}

// detectHeader reports whether the first record is a header row and, if so,
// where each column lives. A record counts as a header when any cell matches
// a known column synonym.
func detectHeader(record []string) (columnLayout, bool) {
	layout := defaultLayout
	found := false
	for i, cell := range record {
		name := normalizeHeader(cell)
		switch {
		case matchesSynonym(name, referenceSynonyms):
			layout.reference = i
			found = true
		case matchesSynonym(name, invoiceSynonyms):
			layout.invoice = i
			found = true
		case matchesSynonym(name, profitSynonyms):
			layout.profit = i
			found = true
		}
	}
	return layout, found
}

func normalizeHeader(cell string) string {
	name := strings.ToLower(strings.TrimSpace(cell))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, ".", "")
	return name
}

func matchesSynonym(name string, synonyms []string) bool {
	for _, s := range synonyms {
		if name == s {
			return true
		}
	}
	return false
}

func parseRecord(record []string, layout columnLayout) (invoice.StatementRow, error) {
	ref, err := parseReference(cellAt(record, layout.reference))
	if err != nil {
		return invoice.StatementRow{}, err
	}

	profit, err := parseAmount(cellAt(record, layout.profit))
	if err != nil {
		return invoice.StatementRow{}, err
	}

	return invoice.StatementRow{
		SellerReference: ref,
		InvoiceNumber:   strings.TrimSpace(cellAt(record, layout.invoice)),
		Profit:          profit,
	}, nil
}

func cellAt(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// parseReference accepts plain integers and spreadsheet numerics like "3.0"
func parseReference(cell string) (int64, error) {
	s := strings.TrimSpace(cell)
	if ref, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ref, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() || !d.IsPositive() {
		return 0, errors.New("reference is not a positive integer")
	}
	return d.IntPart(), nil
}

// parseAmount strips currency noise ("Rs. 1,250.50") before parsing
func parseAmount(cell string) (decimal.Decimal, error) {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "Rs.")
	s = strings.TrimPrefix(s, "Rs")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	return decimal.NewFromString(s)
}
