package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"clientapi/internal/models"
)

const (
	KindAssets   = "assets"
	KindContacts = "contact_details"
	KindPensions = "pensions"
)

// ProgressFunc receives one call per completed simulated step.
type ProgressFunc func(kind string, clientID json.Number, step, total int)

func logProgress(kind string, clientID json.Number, step, total int) {
	log.Printf("[fetch] %s client=%s step %d/%d", kind, clientID, step, total)
}

// ClientService serves the per-client lookups behind /clients/:client_id/objects.
// Every lookup waits Steps x StepDelay before returning its fixed payload.
type ClientService struct {
	Steps     int
	StepDelay time.Duration
	Progress  ProgressFunc
}

func NewClientService(steps int, stepDelay time.Duration) *ClientService {
	return &ClientService{Steps: steps, StepDelay: stepDelay, Progress: logProgress}
}

// LookupDuration is how long a single lookup takes.
func (s *ClientService) LookupDuration() time.Duration {
	return time.Duration(s.Steps) * s.StepDelay
}

func (s *ClientService) simulate(ctx context.Context, kind string, clientID json.Number) error {
	timer := time.NewTimer(s.StepDelay)
	defer timer.Stop()

	for step := 1; step <= s.Steps; step++ {
		if step > 1 {
			timer.Reset(s.StepDelay)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if s.Progress != nil {
			s.Progress(kind, clientID, step, s.Steps)
		}
	}
	return nil
}

func (s *ClientService) FetchAssets(ctx context.Context, clientID json.Number) ([]models.AssetRecord, error) {
	if err := s.simulate(ctx, KindAssets, clientID); err != nil {
		return nil, err
	}
	return []models.AssetRecord{
		{Name: "Stocks & Shares ISA", Amount: "12500.00"},
		{Name: "Premium Bonds", Amount: "5000.00"},
		{Name: "Buy-to-let Property", Amount: "240000.00"},
	}, nil
}

func (s *ClientService) FetchContactDetails(ctx context.Context, clientID json.Number) (models.ContactDetails, error) {
	if err := s.simulate(ctx, KindContacts, clientID); err != nil {
		return models.ContactDetails{}, err
	}
	return models.ContactDetails{
		Email:  "bryce.hernandez@example.com",
		Phone:  "+44 20 7946 0958",
		Handle: "@bhernandez",
	}, nil
}

func (s *ClientService) FetchPensions(ctx context.Context, clientID json.Number) ([]models.PensionRecord, error) {
	if err := s.simulate(ctx, KindPensions, clientID); err != nil {
		return nil, err
	}
	return []models.PensionRecord{
		{Name: "Workplace Pension", Maturity: "2051-04-06"},
		{Name: "Self-Invested Personal Pension", Maturity: "2056-09-30"},
	}, nil
}

// GetObjects runs the three lookups concurrently and joins them.
// If any lookup fails the whole call fails and no partial result is returned.
func (s *ClientService) GetObjects(ctx context.Context, clientID json.Number) (*models.ClientObjects, error) {
	var (
		assets   []models.AssetRecord
		contacts models.ContactDetails
		pensions []models.PensionRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		assets, err = s.FetchAssets(gctx, clientID)
		return wrapLookup(KindAssets, err)
	})
	g.Go(func() (err error) {
		contacts, err = s.FetchContactDetails(gctx, clientID)
		return wrapLookup(KindContacts, err)
	})
	g.Go(func() (err error) {
		pensions, err = s.FetchPensions(gctx, clientID)
		return wrapLookup(KindPensions, err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.ClientObjects{
		ClientID:       clientID,
		ContactDetails: contacts,
		Assets:         assets,
		Pensions:       pensions,
	}, nil
}

// ErrLookupFailed marks errors produced by one of the fan-out lookups.
var ErrLookupFailed = errors.New("client lookup failed")

func wrapLookup(kind string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrLookupFailed, kind, err)
}
