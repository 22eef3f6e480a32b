package earnings

import (
	"fmt"

	"github.com/NDNewell/earnings-analytics/models"
	"github.com/NDNewell/earnings-analytics/util"
)

const EARNINGS_RESPONSE_PATH = "./resources/earnings_response.json"

// EarningsApiClientMock embeds mocked logic for the earnings api client
type EarningsApiClientMock struct {
}

// NewEarningsApiClientMock creates a new instance of EarningsApiClientMock
func NewEarningsApiClientMock() *EarningsApiClientMock {
	return &EarningsApiClientMock{}
}

// FetchRecords loads a canned record batch from the resources fixture.
func (c *EarningsApiClientMock) FetchRecords() ([]models.RawRecord, error) {
	records, err := util.ReadRawRecordsFromJSON(EARNINGS_RESPONSE_PATH)
	if err != nil {
		fmt.Println("Could not read earnings response from json")
		return nil, err
	}
	return records, nil
}
