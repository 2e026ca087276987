package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/sim"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "runs.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestSaveRunAndTopRuns(t *testing.T) {
	store := testStore(t)

	scores := []int{120, 340, 50}
	for _, score := range scores {
		if _, err := store.SaveRun(sim.RunSummary{Score: score, Currency: score / 10, Distance: float64(score) * 10}); err != nil {
			t.Fatalf("SaveRun(%d): %v", score, err)
		}
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	want := []int{340, 120, 50}
	for i, run := range runs {
		if run.Score != want[i] {
			t.Errorf("rank %d: score %d, want %d", i, run.Score, want[i])
		}
	}

	limited, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns(2): %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limit ignored: got %d runs", len(limited))
	}
}

func TestSaveRunRoundTripsFields(t *testing.T) {
	store := testStore(t)

	in := sim.RunSummary{Score: 88, Currency: 17, Distance: 880.5, ConsumablesUsed: 2, LongestStreak: 6}
	if _, err := store.SaveRun(in); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	got := runs[0]
	if got.Score != in.Score || got.Currency != in.Currency || got.ConsumablesUsed != in.ConsumablesUsed || got.LongestStreak != in.LongestStreak {
		t.Errorf("round trip: %+v", got)
	}
	if got.Distance != in.Distance {
		t.Errorf("distance = %v, want %v", got.Distance, in.Distance)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created timestamp missing")
	}
}

func TestHighScore(t *testing.T) {
	store := testStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore (empty): %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d", high)
	}

	store.SaveRun(sim.RunSummary{Score: 40})
	store.SaveRun(sim.RunSummary{Score: 230})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 230 {
		t.Errorf("high score = %d, want 230", high)
	}
}

func TestClearRuns(t *testing.T) {
	store := testStore(t)
	store.SaveRun(sim.RunSummary{Score: 10})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns: %v", err)
	}
	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("%d runs remain after clear", len(runs))
	}
}

func TestWalletAccumulates(t *testing.T) {
	store := testStore(t)

	balance, err := store.Wallet()
	if err != nil {
		t.Fatalf("Wallet: %v", err)
	}
	if balance != 0 {
		t.Errorf("fresh wallet = %d", balance)
	}

	store.Deposit(30)
	store.Deposit(12)

	balance, err = store.Wallet()
	if err != nil {
		t.Fatalf("Wallet: %v", err)
	}
	if balance != 42 {
		t.Errorf("wallet = %d, want 42", balance)
	}
}

func TestPowerMultiplierRoundTrip(t *testing.T) {
	store := testStore(t)

	mult, err := store.PowerMultiplier()
	if err != nil {
		t.Fatalf("PowerMultiplier: %v", err)
	}
	if mult != 1.0 {
		t.Errorf("default multiplier = %v, want 1.0", mult)
	}

	if err := store.SetPowerMultiplier(1.3); err != nil {
		t.Fatalf("SetPowerMultiplier: %v", err)
	}
	mult, err = store.PowerMultiplier()
	if err != nil {
		t.Fatalf("PowerMultiplier: %v", err)
	}
	if mult != 1.3 {
		t.Errorf("multiplier = %v, want 1.3", mult)
	}
}

func TestStashRoundTrip(t *testing.T) {
	store := testStore(t)

	stash, err := store.Stash()
	if err != nil {
		t.Fatalf("Stash: %v", err)
	}
	if len(stash) != 0 {
		t.Errorf("fresh stash = %v", stash)
	}

	store.SetStash(sim.ConsumableLifebuoy, 2)
	store.SetStash(sim.ConsumableMachete, 1)
	store.SetStash(sim.ConsumableMachete, 3) // Overwrite, not add

	stash, err = store.Stash()
	if err != nil {
		t.Fatalf("Stash: %v", err)
	}
	if stash[sim.ConsumableLifebuoy] != 2 || stash[sim.ConsumableMachete] != 3 {
		t.Errorf("stash = %v", stash)
	}
}

func TestSessionAdapterDefaults(t *testing.T) {
	var nilAdapter *SessionAdapter
	params := nilAdapter.StartParams()
	if params.PowerMultiplier != 1.0 {
		t.Errorf("nil adapter multiplier = %v", params.PowerMultiplier)
	}
	if len(params.Consumables) != 0 {
		t.Errorf("nil adapter consumables = %v", params.Consumables)
	}

	// A nil-store adapter degrades the same way.
	params = NewSessionAdapter(nil).StartParams()
	if params.PowerMultiplier != 1.0 {
		t.Errorf("store-less adapter multiplier = %v", params.PowerMultiplier)
	}
}

func TestSessionAdapterLoadsProfile(t *testing.T) {
	store := testStore(t)
	store.SetStash(sim.ConsumableSnakeCharm, 1)
	store.SetPowerMultiplier(1.2)

	params := NewSessionAdapter(store).StartParams()
	if params.Consumables[sim.ConsumableSnakeCharm] != 1 {
		t.Errorf("consumables = %v", params.Consumables)
	}
	if params.PowerMultiplier != 1.2 {
		t.Errorf("multiplier = %v", params.PowerMultiplier)
	}
}

func TestSessionAdapterBanksRunCurrency(t *testing.T) {
	store := testStore(t)
	adapter := NewSessionAdapter(store)

	adapter.SaveRun(sim.RunSummary{Score: 110, Currency: 25})

	runs, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 110 {
		t.Fatalf("run not persisted: %v", runs)
	}

	balance, err := store.Wallet()
	if err != nil {
		t.Fatalf("Wallet: %v", err)
	}
	if balance != 25 {
		t.Errorf("wallet = %d, want 25", balance)
	}
}

func TestCollaboratorsWiring(t *testing.T) {
	store := testStore(t)
	collab := NewSessionAdapter(store).Collaborators()

	if collab.Session == nil || collab.Summary == nil {
		t.Fatal("adapter must fill both persistence roles")
	}
}
