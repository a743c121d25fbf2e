package cattlelca

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV renders one row per report item: farm_id, year, country, view,
// category, kg.
func WriteCSV(w io.Writer, reports ...*EmissionsReport) error {
	cw := csv.NewWriter(w)

	err := cw.Write([]string{"farm_id", "year", "country", "view", "category", "kg"})
	if err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, report := range reports {
		for _, item := range report.Items() {
			err := cw.Write([]string{
				report.FarmID,
				strconv.Itoa(report.Year),
				report.Country,
				item.View,
				string(item.Category),
				strconv.FormatFloat(item.Value.Kg(), 'f', -1, 64),
			})
			if err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
