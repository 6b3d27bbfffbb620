package domain

import (
	"context"

	"github.com/Flarenzy/rdap-registry/internal/ipaddr"
)

// NetworkStore holds the writes that make up one network persistence.
type NetworkStore interface {
	Save(ctx context.Context, network *Network) error
	Update(ctx context.Context, network *Network) error
	SaveStatus(ctx context.Context, network *Network) error
	SaveBaseAttributes(ctx context.Context, network *Network) error
}

type NetworkRepository interface {
	FindIDByHandle(ctx context.Context, handle string) (int64, bool, error)
	FindByAddress(ctx context.Context, family ipaddr.Family, encoded string) (Network, error)
	// WithinTx runs fn against a store whose writes commit or roll back together.
	WithinTx(ctx context.Context, fn func(NetworkStore) error) error
}
