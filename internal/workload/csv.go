package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TigerCipher/cpu-scheduler/internal/scheduler"
)

// ReadCSV parses rows of "arrival,burst[,priority]". A first row whose
// arrival column is not a number is treated as a header. Lines starting
// with '#' are ignored.
func ReadCSV(r io.Reader) ([]scheduler.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidWorkload, err)
	}

	w := scheduler.NewWorkload()
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("%w: row %d: expected 2 or 3 columns, got %d", ErrInvalidWorkload, i+1, len(row))
		}

		arrival, err := parseInt(row[0])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: arrival: %v", ErrInvalidWorkload, i+1, err)
		}
		burst, err := parseInt(row[1])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: burst: %v", ErrInvalidWorkload, i+1, err)
		}
		var priority int64
		if len(row) == 3 && strings.TrimSpace(row[2]) != "" {
			if priority, err = parseInt(row[2]); err != nil {
				return nil, fmt.Errorf("%w: row %d: priority: %v", ErrInvalidWorkload, i+1, err)
			}
		}

		if _, err := w.Add(arrival, burst, priority); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	return w.Processes(), nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := parseInt(row[0])
	return err != nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
