package hal

// Handle is the minimal capability required of values stored in a Registry.
// The registry never interprets a handle beyond its name; handles are stored
// and returned by value.
type Handle interface {
	// Name returns the non-empty resource name the handle was created with.
	Name() string
}
