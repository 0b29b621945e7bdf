package pricing

import (
	"time"

	catalogRepo "tidybee/database/repository/catalog"
	cleanerRepo "tidybee/database/repository/cleaner"
	clientRepo "tidybee/database/repository/client"
	"tidybee/models"
)

// PricingEngine defines the interface for computing a booking price quote.
type PricingEngine interface {
	CalculatePrice(req models.BookingRequest) (*models.PricingResult, error)
}

// DefaultPricingEngine implements PricingEngine. It owns no state of its own:
// every calculation reads fresh snapshots and returns a pure result.
type DefaultPricingEngine struct {
	CleanerRepo cleanerRepo.CleanerRepository
	ClientRepo  clientRepo.ClientRepository
	Catalog     catalogRepo.CatalogRepository
	Now         func() time.Time // defaults to time.Now; injectable for tests
}

func (e *DefaultPricingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
