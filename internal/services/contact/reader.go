package contact

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/thenoetrevino/phonebook/internal/models"
)

// ReadContacts parses comma-separated rows of name, phone. The first row is a
// header and is skipped; fields past the second are ignored. A row with fewer
// than two fields fails with models.ErrMalformedRow.
func ReadContacts(r io.Reader) ([]models.Contact, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip the header row
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Contact{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	contacts := []models.Contact{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
		}
		if len(record) < 2 {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w (line %d)", models.ErrMalformedRow, line)
		}
		contacts = append(contacts, models.Contact{Name: record[0], Phone: record[1]})
	}

	return contacts, nil
}
