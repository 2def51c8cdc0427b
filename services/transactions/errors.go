package transactions

import "errors"

// ErrSeedInProgress is returned when another reseed holds the seed lock
var ErrSeedInProgress = errors.New("database seeding already in progress")
