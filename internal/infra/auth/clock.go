package auth

import (
	"time"

	"userauth/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a clock reading wall time in UTC.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
