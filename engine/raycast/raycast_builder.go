package raycast

// RaycasterOption is a functional option for configuring a ColliderRaycaster.
// Use the With* functions to create options.
type RaycasterOption func(r *ColliderRaycaster)

// WithMaxDistance ignores hits farther than d world units from the ray origin.
// Non-positive values are ignored.
//
// Parameters:
//   - d: the maximum hit distance
//
// Returns:
//   - RaycasterOption: option function to apply
func WithMaxDistance(d float64) RaycasterOption {
	return func(r *ColliderRaycaster) {
		if d > 0 {
			r.maxDistance = d
		}
	}
}
