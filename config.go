package btree

import "fmt"

const (
	// DefaultOrder is the order used when Config.Order is left zero.
	DefaultOrder = 100
	// DefaultFreeListSize is the number of released nodes a tree keeps for reuse.
	DefaultFreeListSize = 32
)

// Config configures a B-tree.
type Config struct {
	// Order M fixes the node capacity: non-root nodes hold between M−1 and
	// 2M−1 keys, internal nodes have up to 2M children. Must be >= 2.
	Order int
	// FreeListSize bounds the number of released nodes kept for reuse.
	// Zero selects DefaultFreeListSize.
	FreeListSize int
}

func (cfg Config) normalized() Config {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	if cfg.FreeListSize == 0 {
		cfg.FreeListSize = DefaultFreeListSize
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Order < 2 {
		return fmt.Errorf("%w: order must be >= 2, is %d", ErrInvalidConfig, cfg.Order)
	}
	if cfg.FreeListSize < 0 {
		return fmt.Errorf("%w: free list size must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (cfg Config) maxKeys() int     { return 2*cfg.Order - 1 }
func (cfg Config) minKeys() int     { return cfg.Order - 1 }
func (cfg Config) maxChildren() int { return 2 * cfg.Order }
