package services

import (
	"fmt"
	"time"

	"eventmanagement/internal/domain"
)

// validateEventDates allows start and end on the same instant (a one-day
// event) but rejects an end before the start.
func validateEventDates(start, end time.Time) error {
	if end.Before(start) {
		return domain.NewValidation("end_date", "end date must not be before start date")
	}
	return nil
}

// validateSessionTimes requires a strictly positive duration.
func validateSessionTimes(start, end time.Time) error {
	if !end.After(start) {
		return domain.NewValidation("end_time", "end time must be after start time")
	}
	return nil
}

func validateScore(score int) error {
	if score < domain.MinScore || score > domain.MaxScore {
		return domain.NewValidation("score",
			fmt.Sprintf("score must be between %d and %d", domain.MinScore, domain.MaxScore))
	}
	return nil
}
