package hal

// Interface is implemented by every concrete resource interface: something
// with a diagnostic name and an enumerable set of resources. *Registry
// satisfies it, so concrete interfaces built on a registry do too.
type Interface interface {
	Name() string
	Resources() []string
}

// Manager keeps the concrete resource interfaces of one robot, keyed by
// their labels. It is itself built on a Registry, so registering a second
// interface under the same label replaces the first with the usual warning.
//
// Like Registry, a Manager is not thread-safe.
type Manager struct {
	ifaces *Registry[Interface]
}

// NewManager creates an empty interface manager. Only opts.Logger is used;
// the manager's internal registry never claims.
func NewManager(opts *Options) *Manager {
	mopts := DefaultOptions()
	if opts != nil {
		mopts.Logger = opts.Logger
	}
	return &Manager{ifaces: New[Interface]("interface manager", mopts)}
}

// Register adds iface under iface.Name(), replacing any previous interface
// with the same label.
func (m *Manager) Register(iface Interface) {
	m.ifaces.Register(iface)
}

// Get returns the interface registered under name, or a *NotFoundError.
func (m *Manager) Get(name string) (Interface, error) {
	return m.ifaces.Get(name)
}

// Names returns the registered interface labels, sorted.
func (m *Manager) Names() []string {
	return m.ifaces.Names()
}

// Resources returns the resource names of the interface registered under
// ifaceName.
func (m *Manager) Resources(ifaceName string) ([]string, error) {
	iface, err := m.ifaces.Get(ifaceName)
	if err != nil {
		return nil, err
	}
	return iface.Resources(), nil
}
