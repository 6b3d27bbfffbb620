package domain

import (
	"context"

	"github.com/Flarenzy/rdap-registry/internal/update"
)

type NetworkService interface {
	CreateNetwork(ctx context.Context, input NetworkInput) (update.Response, error)
	UpdateNetwork(ctx context.Context, input NetworkInput) (update.Response, error)
	GetNetworkByAddress(ctx context.Context, address string) (Network, error)
}
