package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NDNewell/earnings-analytics/models"
)

// ReadRawRecordsFromJSON loads a raw record batch from JSON on disk.
func ReadRawRecordsFromJSON(filePath string) ([]models.RawRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var records []models.RawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raw records: %w", err)
	}
	return records, nil
}

// ReadAnalyticsSummaryFromJSON loads a serialized summary from disk,
// mostly useful for golden-file comparisons in tests.
func ReadAnalyticsSummaryFromJSON(filePath string) (*models.AnalyticsSummary, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var summary models.AnalyticsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal AnalyticsSummary: %w", err)
	}
	return &summary, nil
}

// PrintRawRecordsPartially prints key fields of the first records of a
// batch, handy when poking the upstream API from main.
func PrintRawRecordsPartially(records []models.RawRecord) {
	fmt.Printf("Records: %d\n", len(records))
	for i, r := range records {
		if i >= 3 {
			fmt.Println("...")
			break
		}
		fmt.Printf("Record %d: earnings=%.2f distance=%q duration=%s date=%s time=%s\n",
			i, r.Earnings, string(r.Distance), r.Duration, r.DateRequested, r.TimeRequested)
	}
}
