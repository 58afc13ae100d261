package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mhazelzet/stock-tracker-backend/internal/apperrors"
	"github.com/mhazelzet/stock-tracker-backend/internal/model"
)

// HoldingsStore is the persistence boundary for holdings. Load is a bulk
// read of all rows; Save is a destructive overwrite (clear and re-append).
// Implemented by the sheets store and the sqlite repository.
type HoldingsStore interface {
	Load(ctx context.Context) ([]model.Holding, []model.FieldWarning, error)
	Save(ctx context.Context, holdings []model.Holding) error
}

// DraftState is the current working copy of the holdings table, plus any
// warnings from the load that produced it.
type DraftState struct {
	Holdings []model.Holding      `json:"holdings"`
	Warnings []model.FieldWarning `json:"warnings,omitempty"`
	// LoadWarning is set when the store could not be read and the draft
	// fell back to an empty table.
	LoadWarning string `json:"loadWarning,omitempty"`
}

// HoldingsService owns the in-memory working draft of the holdings table.
// The store is the sole durable source of truth; the draft is the user's
// editing copy between explicit Save actions. One service instance serves
// one interactive session, guarded by a mutex.
type HoldingsService struct {
	store HoldingsStore
	log   zerolog.Logger

	mu     sync.Mutex
	loaded bool
	state  DraftState
}

// NewHoldingsService creates a new HoldingsService over the given store.
func NewHoldingsService(store HoldingsStore, log zerolog.Logger) *HoldingsService {
	return &HoldingsService{
		store: store,
		log:   log.With().Str("service", "holdings").Logger(),
	}
}

// Draft returns the working draft, loading it from the store on first use.
// A store read failure is not fatal: the draft falls back to an empty table
// and the failure is surfaced as a warning so the user can still edit and
// retry.
func (s *HoldingsService) Draft(ctx context.Context) DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.state = s.loadLocked(ctx)
		s.loaded = true
	}
	return s.state
}

// ReplaceDraft overwrites the working draft with the user's edited rows.
// Tickers are normalized; nothing is persisted until Save.
func (s *HoldingsService) ReplaceDraft(holdings []model.Holding) DraftState {
	normalized := make([]model.Holding, len(holdings))
	for i, h := range holdings {
		h.Ticker = NormalizeTicker(h.Ticker)
		normalized[i] = h
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = DraftState{Holdings: normalized}
	s.loaded = true
	return s.state
}

// Save persists the working draft to the store. On failure the draft stays
// intact in memory so the user can retry; nothing is partially applied
// from this service's point of view (the sqlite store is transactional,
// the sheet store is last-writer-wins).
func (s *HoldingsService) Save(ctx context.Context) error {
	s.mu.Lock()
	holdings := s.state.Holdings
	s.mu.Unlock()

	if err := s.store.Save(ctx, holdings); err != nil {
		s.log.Error().Err(err).Msg("holdings save failed")
		return fmt.Errorf("%w: %v", apperrors.ErrFailedToSaveHoldings, err)
	}

	s.log.Info().Int("rows", len(holdings)).Msg("holdings saved")
	return nil
}

// Reload discards the working draft and re-reads the store, with the same
// empty-table fallback as the initial load.
func (s *HoldingsService) Reload(ctx context.Context) DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = s.loadLocked(ctx)
	s.loaded = true
	return s.state
}

// loadLocked reads the store. Callers must hold s.mu.
func (s *HoldingsService) loadLocked(ctx context.Context) DraftState {
	holdings, warnings, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("holdings load failed, starting with empty table")
		return DraftState{
			Holdings:    []model.Holding{},
			LoadWarning: fmt.Sprintf("holdings load failed: %v; starting with empty table", err),
		}
	}
	return DraftState{Holdings: holdings, Warnings: warnings}
}
