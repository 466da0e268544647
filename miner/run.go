// File: run.go
// Role: Run — drives one search to completion under context
// cancellation, correlates its log lines with a run ID, and flushes
// buffered output (spec §5/§7).
package miner

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Run executes the configured search to completion, writing every
// accepted fragment through Config.Writer/Identifiers before
// returning. Cancelling ctx requests cooperative abort; the search
// unwinds at the next node boundary and Run returns ErrAborted
// wrapped in a MinerError.
func (m *Miner) Run(ctx context.Context) error {
	runID := uuid.NewString()
	log := m.logger.With().Str("run_id", runID).Logger()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, gctx := errgroup.WithContext(runCtx)
	group.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			m.Cancel()
		}

		return nil
	})

	group.Go(func() error {
		defer cancel()

		return m.mine()
	})

	mineErr := group.Wait()

	if mineErr != nil {
		log.Error().Err(mineErr).Msg("search failed")

		return &MinerError{RunID: runID, Err: mineErr}
	}

	if err := m.flush(); err != nil {
		log.Error().Err(err).Msg("failed to flush output")

		return &MinerError{RunID: runID, Err: err}
	}

	log.Info().Int("reported", len(m.reported)).Msg("search complete")

	return nil
}
