package health

import "context"

// Pinger checks availability of a record source.
type Pinger interface {
	Ping(ctx context.Context) error
}
