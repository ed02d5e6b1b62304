package api

import (
	"context"
	"testing"
	"time"

	"github.com/pavelnovac/rcahub/internal/domain"
	"github.com/pavelnovac/rcahub/internal/pkg/taxonomy"
)

type stubStore struct{}

func (stubStore) ReplaceCompaniesForYear(context.Context, domain.Year, []*domain.Company) ([]*domain.Company, error) {
	return nil, nil
}

func (stubStore) ListCompaniesByYear(context.Context, domain.Year) ([]*domain.Company, error) {
	return nil, nil
}

func (stubStore) GetCompanyByName(context.Context, domain.Year, string) (*domain.Company, error) {
	return nil, nil
}

func (stubStore) DeleteCompany(context.Context, domain.Year, string) error { return nil }

func (stubStore) ListYears(context.Context) ([]domain.Year, error) { return nil, nil }

func TestServeReturnsAfterShutdown(t *testing.T) {
	svc, err := NewAPIService(stubStore{}, taxonomy.Default())
	if err != nil {
		t.Fatalf("NewAPIService() error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		svc.Serve("127.0.0.1:0")
	}()

	deadline := time.Now().Add(5 * time.Second)
	for svc.router.ListenerAddr() == nil || svc.router.ListenerAddr().String() == "" {
		if time.Now().After(deadline) {
			t.Fatal("listener never came up")
		}
		time.Sleep(10 * time.Millisecond)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := svc.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error: %v", err)
	}

	// Serve must return cleanly; a fatal exit would kill the test binary.
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}
