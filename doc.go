// Package fsmeta answers two synchronous questions about a single filesystem
// path: who owns it and what can be done with it.
//
// Owner lookups go through an OwnerResolver. The primary resolver of the
// running platform reads the numeric owner from stat(2) and maps it through
// the user database on POSIX systems, or reads the owner SID from the file's
// security descriptor and resolves it to domain\name on Windows.
//
// Permission strings come from a PermissionFormatter. POSIX systems get the
// familiar ten character ls -l form ("-rw-r--r--"). Windows gets a three
// character approximation that only looks at the read-only attribute and the
// file extension. It does not evaluate the DACL.
//
// Every failure is returned as one of the typed errors of this package and
// never terminates the process. ResolveOwner and FormatPermissions flatten
// results into display strings for callers that only want text.
package fsmeta
