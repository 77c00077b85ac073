package idgen

import "github.com/bwmarrin/snowflake"

// Snowflake issues time-ordered product ids.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Snowflake{node: node}, nil
}

func (s *Snowflake) NextID() string {
	return s.node.Generate().String()
}
