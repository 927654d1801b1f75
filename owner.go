package fsmeta

// OwnerResolver determines the principal owning a filesystem entry.
type OwnerResolver interface {
	ResolveOwner(path string) (OwnerIdentity, error)
}

// NewOwnerResolver returns the primary resolver of the running platform.
func NewOwnerResolver(opts ...Option) OwnerResolver {
	return newOwnerResolver(newOptions(opts...))
}

// NewOwnerResolverFor returns the primary resolver for the named platform,
// or an *UnsupportedPlatformError if this build cannot serve it.
func NewOwnerResolverFor(platform string, opts ...Option) (OwnerResolver, error) {
	if !IsSupportedPlatform(platform) {
		return nil, &UnsupportedPlatformError{Name: platform}
	}
	return NewOwnerResolver(opts...), nil
}

// ResolveOwner returns the owner of path as display string, or the failure
// message if it cannot be determined.
func ResolveOwner(path string) string {
	id, err := NewOwnerResolver().ResolveOwner(path)
	if err != nil {
		return err.Error()
	}
	return id.String()
}
