package service

// StaticLocation implements ports.LocationProvider for a validator bolted to
// a fixed stop or vehicle.
type StaticLocation string

// CurrentLocation returns the configured identifier.
func (l StaticLocation) CurrentLocation() string {
	return string(l)
}
