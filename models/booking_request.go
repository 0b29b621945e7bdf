package models

// Cleaning types offered on the platform.
const (
	CleaningBasic   = "basic"
	CleaningDeep    = "deep"
	CleaningMoveOut = "moveout"
)

// Recurrence frequencies for repeating bookings.
const (
	FrequencyNone     = "none"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// BookingRequest captures the parameters of a prospective booking. It is the
// normalized input to the pricing engine and is never persisted by it.
type BookingRequest struct {
	ClientID      string         `json:"clientId"`
	CleanerID     string         `json:"cleanerId"`
	CleaningType  string         `json:"cleaningType"` // basic | deep | moveout
	Hours         float64        `json:"hours"`
	Services      map[string]int `json:"services,omitempty"` // additional-service key -> quantity
	Date          string         `json:"date"`               // ISO date, e.g. "2025-08-14"
	StartTime     string         `json:"startTime"`          // 24h "HH:MM"
	Frequency     string         `json:"frequency,omitempty"`
	DistanceMiles *float64       `json:"distanceMiles,omitempty"`
	SeriesID      string         `json:"seriesId,omitempty"` // recurring-series linkage, if any
}

// QuoteInput is the wire form accepted from the booking form. Both "hours"
// and "estimated_hours" are accepted spellings; "hours" wins when both are set.
type QuoteInput struct {
	ClientID       string         `json:"client_id"`
	CleanerID      string         `json:"cleaner_id"`
	CleaningType   string         `json:"cleaning_type"`
	Hours          *float64       `json:"hours,omitempty"`
	EstimatedHours *float64       `json:"estimated_hours,omitempty"`
	Services       map[string]int `json:"services,omitempty"`
	Date           string         `json:"date"`
	StartTime      string         `json:"start_time"`
	Frequency      string         `json:"frequency,omitempty"`
	DistanceMiles  *float64       `json:"distance_miles,omitempty"`
	SeriesID       string         `json:"series_id,omitempty"`
}

// ToBookingRequest normalizes the wire input into a BookingRequest.
func (in *QuoteInput) ToBookingRequest() BookingRequest {
	hours := 0.0
	if in.Hours != nil {
		hours = *in.Hours
	} else if in.EstimatedHours != nil {
		hours = *in.EstimatedHours
	}

	frequency := in.Frequency
	if frequency == "" {
		frequency = FrequencyNone
	}

	return BookingRequest{
		ClientID:      in.ClientID,
		CleanerID:     in.CleanerID,
		CleaningType:  in.CleaningType,
		Hours:         hours,
		Services:      in.Services,
		Date:          in.Date,
		StartTime:     in.StartTime,
		Frequency:     frequency,
		DistanceMiles: in.DistanceMiles,
		SeriesID:      in.SeriesID,
	}
}
