package update

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Flarenzy/rdap-registry/internal/validation"
)

type testDTO struct {
	handle string
}

func (d testDTO) GetHandle() string {
	return d.handle
}

type testModel struct {
	handle string
}

type recorder struct {
	steps []string
}

func (r *recorder) hooks(validate func(*validation.Result), persistErr error) Hooks[testDTO, testModel] {
	return Hooks[testDTO, testModel]{
		Validate: func(_ context.Context, dto testDTO) (*validation.Result, error) {
			r.steps = append(r.steps, "validate")
			result := &validation.Result{}
			if validate != nil {
				validate(result)
			}
			return result, nil
		},
		Convert: func(dto testDTO) (testModel, error) {
			r.steps = append(r.steps, "convert")
			return testModel{handle: dto.handle}, nil
		},
		Persist: func(context.Context, testModel) error {
			r.steps = append(r.steps, "persist")
			return persistErr
		},
	}
}

func TestExecuteReturnsSuccessWithHandle(t *testing.T) {
	rec := &recorder{}
	p := New("network", nil, rec.hooks(nil, nil))

	resp, err := p.Execute(context.Background(), testDTO{handle: "NET-1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !resp.Success() || resp.Handle != "NET-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(rec.steps) != 3 || rec.steps[0] != "validate" || rec.steps[1] != "convert" || rec.steps[2] != "persist" {
		t.Fatalf("unexpected steps: %v", rec.steps)
	}
}

func TestExecuteStopsAtFirstValidationError(t *testing.T) {
	rec := &recorder{}
	p := New("network", nil, rec.hooks(func(result *validation.Result) {
		result.Add(validation.HandleConflict("NET-1"))
		result.Add(validation.EmptyField("name"))
	}, nil))

	resp, err := p.Execute(context.Background(), testDTO{handle: "NET-1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Success() {
		t.Fatal("expected error response")
	}
	if resp.Err.Code != validation.CodeConflict || resp.Err.Status != http.StatusConflict {
		t.Fatalf("expected first error to be reported, got %+v", resp.Err)
	}
	if len(rec.steps) != 1 {
		t.Fatalf("expected only validation to run, got %v", rec.steps)
	}
}

func TestExecuteRecoversValidationErrorFromPersist(t *testing.T) {
	rec := &recorder{}
	p := New("network", nil, rec.hooks(nil, validation.HandleConflict("NET-1")))

	resp, err := p.Execute(context.Background(), testDTO{handle: "NET-1"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Success() || resp.Err.Kind != validation.KindConflict {
		t.Fatalf("expected conflict response, got %+v", resp)
	}
}

func TestExecutePropagatesPersistenceFailure(t *testing.T) {
	boom := errors.New("disk full")
	rec := &recorder{}
	p := New("network", nil, rec.hooks(nil, boom))

	_, err := p.Execute(context.Background(), testDTO{handle: "NET-1"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected persistence error, got %v", err)
	}
}

func TestExecutePropagatesValidateFailure(t *testing.T) {
	boom := errors.New("lookup failed")
	p := New("network", nil, Hooks[testDTO, testModel]{
		Validate: func(context.Context, testDTO) (*validation.Result, error) {
			return nil, boom
		},
		Convert: func(testDTO) (testModel, error) {
			t.Fatal("convert must not run")
			return testModel{}, nil
		},
		Persist: func(context.Context, testModel) error {
			t.Fatal("persist must not run")
			return nil
		},
	})

	_, err := p.Execute(context.Background(), testDTO{handle: "NET-1"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected validate error, got %v", err)
	}
}
