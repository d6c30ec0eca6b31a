package hal

// ClaimRequest pairs a claimant (for example a controller name) with the
// resources it wants exclusive use of.
type ClaimRequest struct {
	Claimant  string
	Resources []string
}

// CheckConflict returns a *ConflictError (matching ErrConflict) when two
// different claimants request the same resource. A claimant listing a
// resource twice is not a conflict; exclusivity is per claimant, not per
// mention.
func CheckConflict(requests []ClaimRequest) error {
	claimedBy := make(map[string]string)
	for _, req := range requests {
		for _, res := range req.Resources {
			first, ok := claimedBy[res]
			if !ok {
				claimedBy[res] = req.Claimant
				continue
			}
			if first != req.Claimant {
				return &ConflictError{Resource: res, First: first, Second: req.Claimant}
			}
		}
	}
	return nil
}
