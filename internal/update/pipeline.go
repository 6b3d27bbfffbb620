// Package update runs the validate, convert, persist sequence shared by every
// mutating operation on a registry resource.
package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Flarenzy/rdap-registry/internal/validation"
)

type DTO interface {
	GetHandle() string
}

// Hooks are the resource specific steps of a pipeline. A validation.Error
// returned from Convert or Persist is reported to the caller like a failed
// validation; any other error is fatal.
type Hooks[D DTO, M any] struct {
	Validate func(ctx context.Context, dto D) (*validation.Result, error)
	Convert  func(dto D) (M, error)
	Persist  func(ctx context.Context, model M) error
}

type Pipeline[D DTO, M any] struct {
	resource string
	hooks    Hooks[D, M]
	logger   *slog.Logger
}

func New[D DTO, M any](resource string, logger *slog.Logger, hooks Hooks[D, M]) *Pipeline[D, M] {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline[D, M]{
		resource: resource,
		hooks:    hooks,
		logger:   logger,
	}
}

func (p *Pipeline[D, M]) Execute(ctx context.Context, dto D) (Response, error) {
	handle := dto.GetHandle()
	start := time.Now()
	p.logger.DebugContext(ctx, "begin update", "resource", p.resource, "handle", handle)
	defer func() {
		p.logger.InfoContext(ctx, "end update", "resource", p.resource, "handle", handle, "elapsed_ms", time.Since(start).Milliseconds())
	}()

	result, err := p.hooks.Validate(ctx, dto)
	if err != nil {
		return Response{}, fmt.Errorf("validate %s: %w", p.resource, err)
	}
	if first, ok := result.FirstError(); ok {
		return ErrorResponse(handle, first), nil
	}

	model, err := p.hooks.Convert(dto)
	if err != nil {
		return recoverError(handle, fmt.Errorf("convert %s: %w", p.resource, err))
	}

	if err := p.hooks.Persist(ctx, model); err != nil {
		return recoverError(handle, fmt.Errorf("persist %s: %w", p.resource, err))
	}

	return SuccessResponse(handle), nil
}

func recoverError(handle string, err error) (Response, error) {
	var verr validation.Error
	if errors.As(err, &verr) {
		return ErrorResponse(handle, verr), nil
	}
	return Response{}, err
}
