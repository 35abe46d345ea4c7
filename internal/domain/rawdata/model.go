package rawdata

import "time"

// Payload is one provider response kept verbatim for audit and re-parsing.
type Payload struct {
	Source      string
	EntityType  string
	EntityKey   string
	PayloadJSON string
	PayloadHash string
	FetchedAt   time.Time
}
