package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/yoockh/chatrelay/internal/models"
)

// CSVHeader is written once, when the CSV file is created.
var CSVHeader = []string{"timestamp", "email", "total_input_tokens", "total_output_tokens"}

const blockTimeLayout = "2006-01-02 15:04:05"

// Encoding renders one record as a complete, self-contained file entry.
type Encoding interface {
	// Header returns the bytes that open a new file, or nil.
	Header() []byte
	Encode(rec *models.InteractionRecord) ([]byte, error)
}

type CSVEncoding struct{}

func (CSVEncoding) Header() []byte {
	b, _ := csvLine(CSVHeader)
	return b
}

func (CSVEncoding) Encode(rec *models.InteractionRecord) ([]byte, error) {
	return csvLine([]string{
		rec.RecordedAt.UTC().Format(time.RFC3339Nano),
		rec.Email,
		strconv.FormatInt(rec.TotalInputTokens, 10),
		strconv.FormatInt(rec.TotalOutputTokens, 10),
	})
}

func csvLine(fields []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(fields); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BlockEncoding writes a multi-line block per record, separated by a blank line.
type BlockEncoding struct{}

func (BlockEncoding) Header() []byte { return nil }

func (BlockEncoding) Encode(rec *models.InteractionRecord) ([]byte, error) {
	return []byte(fmt.Sprintf("%s %s\n total_input_tokens: %d\n total_output_tokens: %d\n\n",
		rec.RecordedAt.UTC().Format(blockTimeLayout),
		rec.Email,
		rec.TotalInputTokens,
		rec.TotalOutputTokens,
	)), nil
}
