package messages

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"medivance-backend/models"
)

// WriteCSV writes messages with a header row, one message per line.
func WriteCSV(w io.Writer, messages []models.ContactMessage) error {
	if err := gocsv.Marshal(messages, w); err != nil {
		return fmt.Errorf("failed to write messages csv: %w", err)
	}
	return nil
}
