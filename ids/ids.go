// Package ids hands out time-ordered int64 identifiers for new records.
//
// Ids are kept below 2^53 so that browsers reading them as JSON numbers
// get the exact value back: 10 bits of node and sequence under a
// millisecond clock counted from 2024-01-01 UTC.
package ids

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// MaxSafe is the largest integer a float64 holds exactly.
const MaxSafe = 1<<53 - 1

const (
	epochMillis = 1704067200000
	nodeBits    = 2
	stepBits    = 8
)

func init() {
	snowflake.Epoch = epochMillis
	snowflake.NodeBits = nodeBits
	snowflake.StepBits = stepBits
}

// Generator returns a fresh unique id on every call.
type Generator interface {
	NextID() int64
}

// Snowflake generates ids that grow with time, so records created later sort after earlier ones.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake creates a generator for the given node number (0-3).
func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &Snowflake{node: n}, nil
}

func (s *Snowflake) NextID() int64 {
	return s.node.Generate().Int64()
}
