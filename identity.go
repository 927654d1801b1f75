package fsmeta

// OwnerIdentity is the principal owning a filesystem entry.
// Domain is always empty on POSIX systems.
type OwnerIdentity struct {
	Name   string
	Domain string
}

// String returns domain\name when a domain is known, name otherwise.
func (id OwnerIdentity) String() string {
	if id.Domain != "" {
		return id.Domain + `\` + id.Name
	}
	return id.Name
}
