package earnings

import (
	"github.com/NDNewell/earnings-analytics/models"
)

// EarningsAPI defines the interface for fetching raw trip/earning
// records from the upstream earnings service.
type EarningsAPI interface {
	FetchRecords() ([]models.RawRecord, error)
}
