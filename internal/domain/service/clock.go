package service

import "time"

// Clock supplies the current instant used for token expiry decisions.
type Clock interface {
	Now() time.Time
}
