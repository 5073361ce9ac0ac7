package protocol

import (
	"context"

	"github.com/sailfin-io/tap-xero/types"
)

type Config interface {
	Validate() error
}

type Driver interface {
	GetConfigRef() Config
	Spec() any
	Type() string
	// specific to test & setup
	Setup(ctx context.Context) error
	SetupState(state *types.State)
	// sync artifacts
	MaxConnections() int
	// specific to discover
	Discover(ctx context.Context) ([]*types.Stream, error)
	// specific to sync
	Read(ctx context.Context, stream *types.ConfiguredStream) error
}
