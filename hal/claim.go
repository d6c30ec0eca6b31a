package hal

// Owner is the external collaborator that performs claim bookkeeping for a
// claiming registry. The registry only relays claims; conflict detection and
// exclusivity semantics live entirely in the Owner implementation.
type Owner interface {
	// Claim marks the named resource as in use. Errors are returned to the
	// Get caller unchanged.
	Claim(name string) error
}

// ClaimPolicy decides whether a successful Registry lookup also claims the
// resource. The set of policies is closed: use the Claiming or NonClaiming
// values. A registry's policy is fixed for its lifetime.
type ClaimPolicy interface {
	claim(owner Owner, name string) error
}

// Claiming forwards every successful lookup to the owner's Claim method.
var Claiming ClaimPolicy = claimResources{}

// NonClaiming performs no claim on lookup and never touches the owner.
var NonClaiming ClaimPolicy = dontClaimResources{}

type claimResources struct{}

func (claimResources) claim(owner Owner, name string) error {
	return owner.Claim(name)
}

type dontClaimResources struct{}

func (dontClaimResources) claim(Owner, string) error { return nil }
