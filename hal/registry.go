package hal

import (
	"log/slog"
	"sort"
)

// Options configures a Registry.
type Options struct {
	// Policy decides whether Get also claims the looked-up resource.
	// Nil selects NonClaiming.
	Policy ClaimPolicy

	// Owner receives forwarded claims under the Claiming policy. It is
	// ignored by NonClaiming, and required (non-nil) by Claiming.
	Owner Owner

	// Logger receives the duplicate-registration warning.
	// Nil selects slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options used when New is given nil: a
// non-claiming registry logging through the default logger.
func DefaultOptions() *Options {
	return &Options{Policy: NonClaiming}
}

// Registry maps resource names to handles of type H. Invariant: every stored
// handle's own name equals its key; Register maintains this by always
// inserting under the handle's name.
//
// Thread safety: Registry instances are NOT thread-safe. Callers must
// serialize concurrent access externally.
type Registry[H Handle] struct {
	label     string
	resources map[string]H
	policy    ClaimPolicy
	owner     Owner
	log       *slog.Logger
}

// New creates an empty registry. The label is the registry's identity in
// diagnostics (log records and NotFoundError); pick something a log reader
// can map back to the concrete interface, e.g. "effort joint command".
//
// New panics when opts selects the Claiming policy without an Owner; that is
// a wiring bug, not a runtime condition.
func New[H Handle](label string, opts *Options) *Registry[H] {
	if opts == nil {
		opts = DefaultOptions()
	}
	policy := opts.Policy
	if policy == nil {
		policy = NonClaiming
	}
	if _, claims := policy.(claimResources); claims && opts.Owner == nil {
		panic("hal: claiming registry requires an owner")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Registry[H]{
		label:     label,
		resources: make(map[string]H),
		policy:    policy,
		owner:     opts.Owner,
		log:       log,
	}
}

// Name returns the registry's diagnostic label.
func (r *Registry[H]) Name() string { return r.label }

// Len returns the number of registered resources.
func (r *Registry[H]) Len() int { return len(r.resources) }

// Names returns the registered resource names, sorted. The contract only
// promises the exact set of keys with no duplicates; the ordering is for
// stable diagnostics.
func (r *Registry[H]) Names() []string {
	out := make([]string, 0, len(r.resources))
	for name := range r.resources {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resources is an alias for Names satisfying the Interface contract.
func (r *Registry[H]) Resources() []string { return r.Names() }

// Register inserts h under h.Name(). If the name is already taken the stored
// handle is replaced and a single warning is logged; replacement is the
// caller's honored intent, not an error.
func (r *Registry[H]) Register(h H) {
	name := h.Name()
	if _, exists := r.resources[name]; exists {
		r.log.Warn("replacing previously registered handle",
			"resource", name,
			"registry", r.label)
	}
	r.resources[name] = h
}

// Get returns the handle registered under name. A miss returns a
// *NotFoundError (matching ErrNotFound) and leaves the registry unchanged.
//
// On a hit the claim policy runs before the handle is returned: under
// Claiming every successful Get claims the resource with the owner, even if
// the caller discards the result. Owner errors abort the lookup and
// propagate unchanged.
func (r *Registry[H]) Get(name string) (H, error) {
	h, ok := r.resources[name]
	if !ok {
		var zero H
		return zero, &NotFoundError{Resource: name, Registry: r.label}
	}
	if err := r.policy.claim(r.owner, name); err != nil {
		var zero H
		return zero, err
	}
	return h, nil
}
