package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Result is the rendered answer for a single path. Failures are carried as
// their display messages.
type Result struct {
	Path             string `json:"path" yaml:"path"`
	Owner            string `json:"owner,omitempty" yaml:"owner,omitempty"`
	OwnerError       string `json:"owner_error,omitempty" yaml:"owner_error,omitempty"`
	Permissions      string `json:"permissions,omitempty" yaml:"permissions,omitempty"`
	PermissionsError string `json:"permissions_error,omitempty" yaml:"permissions_error,omitempty"`

	wantOwner       bool
	wantPermissions bool
}

// Failed reports whether any requested lookup failed.
func (r Result) Failed() bool {
	return r.OwnerError != "" || r.PermissionsError != ""
}

type renderFunc func(w io.Writer, r Result) error

var renderers = map[string]renderFunc{
	"text": renderText,
	"json": renderJSON,
	"yaml": renderYAML,
}

func renderText(w io.Writer, r Result) error {
	owner := r.Owner
	if r.OwnerError != "" {
		owner = r.OwnerError
	}
	perms := r.Permissions
	if r.PermissionsError != "" {
		perms = r.PermissionsError
	}

	var err error
	switch {
	case r.wantOwner && r.wantPermissions:
		_, err = fmt.Fprintf(w, "%s\t%s\t%s\n", perms, owner, r.Path)
	case r.wantOwner:
		_, err = fmt.Fprintln(w, owner)
	case r.wantPermissions:
		_, err = fmt.Fprintln(w, perms)
	}
	return err
}

func renderJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// every result is its own document so that watch output stays parseable
func renderYAML(w io.Writer, r Result) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
