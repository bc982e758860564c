package doctor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/doeshing/wiz/internal/domain"
	"github.com/doeshing/wiz/internal/ports"
)

// LookPathFunc resolves an executable name, exec.LookPath by default.
type LookPathFunc func(string) (string, error)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Stores         ports.StoreLocator
	LogStore       ports.LogStore
	LookPath       LookPathFunc
}

// Run executes checks and returns a report. The error is non-nil when a check failed.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("model %s", cfg.LLM.Model)))
	checks = append(checks, s.binaryCheck(cfg.LLM.Binary))

	for _, kind := range []domain.TaskKind{domain.FreeformCommand, domain.SpellCheck} {
		checks = append(checks, s.storeCheck(ctx, kind))
	}

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, errors.New("one or more checks failed")
	}
	return report, nil
}

func (s *Service) binaryCheck(binary string) domain.HealthCheck {
	lookPath := s.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(binary)
	if err != nil {
		return fail("llm tool", fmt.Sprintf("%s not found: %v", binary, err))
	}
	return ok("llm tool", path)
}

func (s *Service) storeCheck(ctx context.Context, kind domain.TaskKind) domain.HealthCheck {
	name := kind.String() + " log store"
	path, err := s.Stores.StorePath(kind)
	if err != nil {
		return fail(name, err.Error())
	}
	status, err := s.LogStore.Status(ctx, path)
	if errors.Is(err, domain.ErrLogStoreMissing) {
		return warn(name, fmt.Sprintf("%s not created yet", path))
	}
	if err != nil {
		return fail(name, err.Error())
	}
	return ok(name, fmt.Sprintf("%s (%d responses)", path, status.Responses))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
