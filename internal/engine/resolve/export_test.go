// export_test.go exposes internals for white-box staleness testing.
package resolve

import "time"

// SetNowFunc replaces the resolver's clock.
func (r *Resolver) SetNowFunc(now func() time.Time) {
	r.now = now
}
