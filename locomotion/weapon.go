package locomotion

import "time"

// DefaultWeaponActive is how long the blaster stays out after the weapon key.
const DefaultWeaponActive = 333 * time.Millisecond

// WeaponTimer keeps the blaster flag raised until an expiry time on the
// caller's clock.
type WeaponTimer struct {
	Duration    time.Duration
	activeUntil time.Duration
}

// Activate raises the flag until now+Duration, extending an active one.
func (w *WeaponTimer) Activate(now time.Duration) {
	w.activeUntil = now + w.Duration
}

func (w *WeaponTimer) State(now time.Duration) WeaponState {
	if now < w.activeUntil {
		return BlasterActive
	}
	return BlasterInactive
}

func (w *WeaponTimer) Reset() {
	w.activeUntil = 0
}
