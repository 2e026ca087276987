package storage

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hopper/internal/sim"
)

// SessionAdapter implements sim.SessionSource and sim.SummarySink over a
// Store. A nil receiver falls back to default session parameters and
// discards summaries, so callers can wire it unconditionally.
type SessionAdapter struct {
	store *Store
}

// NewSessionAdapter wraps a Store for injection into the simulation.
func NewSessionAdapter(store *Store) *SessionAdapter {
	return &SessionAdapter{store: store}
}

// StartParams loads the stashed consumables and unlocked power
// multiplier. Errors degrade to defaults so a broken profile never
// blocks starting a run.
func (a *SessionAdapter) StartParams() sim.StartParams {
	params := sim.DefaultStartParams()
	if a == nil || a.store == nil {
		return params
	}

	if stash, err := a.store.Stash(); err != nil {
		log.Warn("could not load consumable stash", "err", err)
	} else {
		params.Consumables = stash
	}

	if mult, err := a.store.PowerMultiplier(); err != nil {
		log.Warn("could not load power multiplier", "err", err)
	} else if mult > 0 {
		params.PowerMultiplier = mult
	}

	return params
}

// SaveRun persists the run record and banks the earned currency.
func (a *SessionAdapter) SaveRun(summary sim.RunSummary) {
	if a == nil || a.store == nil {
		return
	}

	if _, err := a.store.SaveRun(summary); err != nil {
		log.Error("could not save run", "err", err)
	}
	if summary.Currency > 0 {
		if err := a.store.Deposit(summary.Currency); err != nil {
			log.Error("could not bank currency", "err", err)
		}
	}
}

// Collaborators returns a collaborator bundle backed by this adapter.
func (a *SessionAdapter) Collaborators() sim.Collaborators {
	return sim.Collaborators{Session: a, Summary: a}
}
