package adapter

import "time"

// Clock abstracts the current time so use cases can be tested with a
// fixed reference time.
type Clock interface {
	Now() time.Time
}
