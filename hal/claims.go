package hal

import "sort"

// Claims is set-based claim bookkeeping. It implements Owner, so it can back
// a claiming registry directly; concrete command interfaces embed one and
// pass it as their registry's owner.
//
// The zero value is ready to use.
type Claims struct {
	set map[string]struct{}
}

// Claim records the named resource as claimed. Claiming the same name twice
// keeps a single entry. It never fails; implementations with real conflict
// semantics wrap or replace Claims.
func (c *Claims) Claim(name string) error {
	if c.set == nil {
		c.set = make(map[string]struct{})
	}
	c.set[name] = struct{}{}
	return nil
}

// Claimed reports whether name has been claimed since the last Clear.
func (c *Claims) Claimed(name string) bool {
	_, ok := c.set[name]
	return ok
}

// Clear drops all recorded claims. Typically called at the top of a control
// cycle before handles are handed out again.
func (c *Claims) Clear() {
	clear(c.set)
}

// Len returns the number of distinct claimed resources.
func (c *Claims) Len() int { return len(c.set) }

// List returns the claimed resource names, sorted.
func (c *Claims) List() []string {
	out := make([]string, 0, len(c.set))
	for name := range c.set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
