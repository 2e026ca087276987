package sim

// Lifecycle management: every destructive mutation routes through
// destroy (mark) and cull (compact), keeping the per-tick cost bounded
// by the active window rather than total historical entity count.

// destroy is the single removal path. It marks an entity dead; the
// compacting pass in cull removes it. Resolver code never edits the
// entity slices in place.
func (w *World) destroy(entity any) {
	switch e := entity.(type) {
	case *Pad:
		e.dead = true
	case *Hazard:
		e.dead = true
	case *Pickup:
		e.dead = true
	case *Mount:
		e.dead = true
	}
}

// ActiveWindow returns the camera-relative range in which entities are
// simulated.
func (w *World) ActiveWindow() (minY, maxY float64) {
	return w.cameraY - w.cfg.Camera.ViewBehind, w.cameraY + w.cfg.Camera.ViewAhead
}

// cull compacts the entity slices: marked-dead entities and entities
// scrolled behind the active window are destroyed. A mount currently
// carrying the player is exempt from positional culling.
func (w *World) cull() {
	minY, _ := w.ActiveWindow()

	pads := w.pads[:0]
	for _, p := range w.pads {
		if p.dead || p.Pos.Y < minY {
			if w.player.OnPad == p.ID {
				w.player.OnPad = 0
			}
			continue
		}
		pads = append(pads, p)
	}
	w.pads = pads

	hazards := w.hazards[:0]
	for _, h := range w.hazards {
		if h.dead || h.Pos.Y < minY {
			continue
		}
		hazards = append(hazards, h)
	}
	w.hazards = hazards

	pickups := w.pickups[:0]
	for _, pk := range w.pickups {
		if pk.dead || pk.Pos.Y < minY {
			continue
		}
		pickups = append(pickups, pk)
	}
	w.pickups = pickups

	mounts := w.mounts[:0]
	for _, m := range w.mounts {
		carrying := w.player.MountedOn == m
		if !carrying && (m.dead || m.Pos.Y < minY) {
			continue
		}
		mounts = append(mounts, m)
	}
	w.mounts = mounts
}

// Pads returns the active pad view.
func (w *World) Pads() []*Pad { return w.pads }

// Hazards returns the active hazard view.
func (w *World) Hazards() []*Hazard { return w.hazards }

// Pickups returns the active pickup view.
func (w *World) Pickups() []*Pickup { return w.pickups }

// Mounts returns the active mount view.
func (w *World) Mounts() []*Mount { return w.mounts }
