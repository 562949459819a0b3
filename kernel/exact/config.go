package exact

import "fmt"

// DefaultMaxLatticePoints is the default budget for lattice-point
// enumeration during Hilbert-basis computation.
const DefaultMaxLatticePoints = 1 << 20

// Config configures an exact kernel.
type Config struct {
	// MaxLatticePoints bounds the number of candidate lattice points the
	// Hilbert-basis computation may enumerate. 0 selects the default.
	MaxLatticePoints int
}

func (cfg Config) normalized() Config {
	if cfg.MaxLatticePoints == 0 {
		cfg.MaxLatticePoints = DefaultMaxLatticePoints
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxLatticePoints < 0 {
		return fmt.Errorf("%w: negative lattice-point budget", ErrInvalidConfig)
	}
	return nil
}
