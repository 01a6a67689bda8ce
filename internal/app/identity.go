package app

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces the opaque ids assigned to profiles and chat
// messages. Injectable so tests can assert deterministic ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production generator.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator issues "<prefix>-1", "<prefix>-2", ... for tests.
// Not safe for concurrent use.
type SequenceGenerator struct {
	Prefix string
	n      int
}

func (g *SequenceGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.Prefix, g.n)
}
