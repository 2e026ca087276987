package sim

// The simulation core never reaches shared singletons; sound, telemetry
// and persistence are explicit collaborators injected at construction.
// All of them have no-op defaults so the core runs standalone.

// AudioSink receives fire-and-forget outcome events. The core never
// waits on playback.
type AudioSink interface {
	PadLanded()
	Splashed()
	Hit()
	Collected()
	Mounted()
	Dismounted()
}

// Telemetry receives push-only incremental events; no return value is
// consumed.
type Telemetry interface {
	PadLanded(streak int)
	HazardDefeated(kind HazardKind)
	PickupCollected(kind PickupKind)
	RunEnded(summary RunSummary)
}

// StartParams are the session-start parameters supplied by the
// persistence collaborator: starting consumable counts and the unlocked
// launch power multiplier.
type StartParams struct {
	Consumables     map[ConsumableKind]int
	PowerMultiplier float64
}

// DefaultStartParams returns a fresh session with no unlocks.
func DefaultStartParams() StartParams {
	return StartParams{
		Consumables:     map[ConsumableKind]int{},
		PowerMultiplier: 1.0,
	}
}

// SessionSource supplies session-start parameters.
type SessionSource interface {
	StartParams() StartParams
}

// RunSummary is the opaque end-of-run report sent upstream.
type RunSummary struct {
	Score           int
	Currency        int
	Distance        float64
	ConsumablesUsed int
	LongestStreak   int
}

// SummarySink receives the end-of-run summary.
type SummarySink interface {
	SaveRun(summary RunSummary)
}

// Collaborators bundles all injected external interfaces.
type Collaborators struct {
	Audio     AudioSink
	Telemetry Telemetry
	Session   SessionSource
	Summary   SummarySink
}

// withDefaults fills nil collaborators with no-op stubs.
func (c Collaborators) withDefaults() Collaborators {
	if c.Audio == nil {
		c.Audio = NopAudio{}
	}
	if c.Telemetry == nil {
		c.Telemetry = NopTelemetry{}
	}
	if c.Session == nil {
		c.Session = NopSession{}
	}
	if c.Summary == nil {
		c.Summary = NopSummary{}
	}
	return c
}

// NopAudio discards all audio events.
type NopAudio struct{}

func (NopAudio) PadLanded()  {}
func (NopAudio) Splashed()   {}
func (NopAudio) Hit()        {}
func (NopAudio) Collected()  {}
func (NopAudio) Mounted()    {}
func (NopAudio) Dismounted() {}

// NopTelemetry discards all telemetry events.
type NopTelemetry struct{}

func (NopTelemetry) PadLanded(int)              {}
func (NopTelemetry) HazardDefeated(HazardKind)  {}
func (NopTelemetry) PickupCollected(PickupKind) {}
func (NopTelemetry) RunEnded(RunSummary)        {}

// NopSession supplies default session parameters.
type NopSession struct{}

func (NopSession) StartParams() StartParams { return DefaultStartParams() }

// NopSummary discards run summaries.
type NopSummary struct{}

func (NopSummary) SaveRun(RunSummary) {}
