package fsmeta

// UnknownOwner is reported by the DegradedOwnerResolver whenever the owner
// cannot be determined.
const UnknownOwner = "unknown:unknown"

// DegradedOwnerResolver asks the operating system for the owner of a path
// through a high level query and never fails: any error yields UnknownOwner.
//
// It is not the primary resolver. Callers that need to tell a missing file
// from an unknown owner must use NewOwnerResolver.
type DegradedOwnerResolver struct {
	opts options
}

// NewDegradedOwnerResolver returns a resolver that falls back to UnknownOwner.
func NewDegradedOwnerResolver(opts ...Option) *DegradedOwnerResolver {
	return &DegradedOwnerResolver{opts: newOptions(opts...)}
}

func (r *DegradedOwnerResolver) ResolveOwner(path string) (OwnerIdentity, error) {
	id, err := queryOwner(r.opts.fs, path)
	if err != nil || id.Name == "" {
		r.opts.logger.WithField("path", path).WithError(err).Debug("owner unknown")
		return OwnerIdentity{Name: UnknownOwner}, nil
	}
	return OwnerIdentity{Name: id.Name}, nil
}
