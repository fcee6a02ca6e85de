package port

import "time"

// Clock abstracts the time source used to measure hold durations.
type Clock interface {
	Now() time.Time
}
