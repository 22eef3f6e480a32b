package earnings

import (
	"github.com/NDNewell/earnings-analytics/api"
	"github.com/NDNewell/earnings-analytics/models"
)

// EarningsApiClient embeds the common HTTPClient
type EarningsApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewEarningsApiClient creates a new instance of EarningsApiClient
func NewEarningsApiClient(httpClient *api.HTTPClient) *EarningsApiClient {
	return &EarningsApiClient{
		HTTPClient: httpClient,
	}
}

// FetchRecords retrieves the full raw record batch from the upstream
// earnings endpoint. Any non-2xx status or transport failure surfaces
// as an error; there is no partial result.
func (c *EarningsApiClient) FetchRecords() ([]models.RawRecord, error) {
	var records []models.RawRecord
	if err := c.Request("GET", "/earnings", nil, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}
