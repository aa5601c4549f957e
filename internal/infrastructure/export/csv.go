// Package export renders complaints into interchange formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"redress/internal/domain/complaint"
)

// csvHeader is the fixed column set; consumers parse by position.
var csvHeader = []string{"id", "user_id", "category", "description", "status", "created_at"}

// WriteComplaintsCSV streams complaints as CSV to w.
func WriteComplaintsCSV(w io.Writer, complaints []*complaint.Complaint) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, c := range complaints {
		record := []string{
			strconv.FormatUint(uint64(c.ID()), 10),
			strconv.FormatUint(uint64(c.UserID()), 10),
			c.Category(),
			c.Description(),
			c.Status().String(),
			c.CreatedAt().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
