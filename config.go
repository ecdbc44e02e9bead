package wavl

import "fmt"

// Config configures a WAVL tree. The zero value is a valid configuration.
type Config struct {
	// Capacity is a hint for the number of entries to pre-allocate storage for.
	Capacity int
	// Paranoid makes the tree validate all of its invariants after every
	// mutation and panic on the first violation. Use for debugging only,
	// it turns every update into an O(n) operation.
	Paranoid bool
}

func (cfg Config) validate() error {
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative, is %d", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}
