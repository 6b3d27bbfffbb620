package domain

import (
	"context"
	"log/slog"

	"github.com/Flarenzy/rdap-registry/internal/update"
)

type loggingNetworkService struct {
	logger *slog.Logger
	next   NetworkService
}

func NewLoggingNetworkService(logger *slog.Logger, next NetworkService) NetworkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingNetworkService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingNetworkService) CreateNetwork(ctx context.Context, input NetworkInput) (update.Response, error) {
	resp, err := s.next.CreateNetwork(ctx, input)
	s.logResponse(ctx, "create network", input, resp, err)
	return resp, err
}

func (s *loggingNetworkService) UpdateNetwork(ctx context.Context, input NetworkInput) (update.Response, error) {
	resp, err := s.next.UpdateNetwork(ctx, input)
	s.logResponse(ctx, "update network", input, resp, err)
	return resp, err
}

func (s *loggingNetworkService) GetNetworkByAddress(ctx context.Context, address string) (Network, error) {
	network, err := s.next.GetNetworkByAddress(ctx, address)
	if err != nil {
		s.logger.ErrorContext(ctx, "get network by address failed", "address", address, "err", err.Error())
		return Network{}, err
	}

	s.logger.DebugContext(ctx, "network found", "address", address, "handle", network.Handle)
	return network, nil
}

func (s *loggingNetworkService) logResponse(ctx context.Context, op string, input NetworkInput, resp update.Response, err error) {
	switch {
	case err != nil:
		s.logger.ErrorContext(ctx, op+" failed", "handle", input.Handle, "err", err.Error())
	case !resp.Success():
		s.logger.InfoContext(ctx, op+" rejected", "handle", input.Handle, "code", resp.Err.Code, "status", resp.Err.Status, "message", resp.Err.Message)
	default:
		s.logger.InfoContext(ctx, op+" succeeded", "handle", resp.Handle, "ip_version", input.IPVersion)
	}
}
