package main

import (
	"io"

	"github.com/jxsl13/fsmeta"
	"github.com/sirupsen/logrus"
)

// app wires the core resolvers to the configured output.
type app struct {
	cfg    *Config
	logger *logrus.Logger
	out    io.Writer
	render renderFunc

	owners fsmeta.OwnerResolver
	perms  fsmeta.PermissionFormatter
}

func newApp(cfg *Config, logger *logrus.Logger, out io.Writer) (*app, error) {
	opts := []fsmeta.Option{fsmeta.WithLogger(logger)}

	owners, err := fsmeta.NewOwnerResolverFor(fsmeta.Platform(), opts...)
	if err != nil {
		return nil, err
	}
	if cfg.DegradedOwner {
		logger.Debug("using degraded owner resolver")
		owners = fsmeta.NewDegradedOwnerResolver(opts...)
	}

	perms, err := fsmeta.NewPermissionFormatterFor(fsmeta.Platform(), opts...)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		out:    out,
		render: renderers[cfg.Output],
		owners: owners,
		perms:  perms,
	}, nil
}

// lookup performs the requested queries for path. Each query is an
// independent synchronous call into the core.
func (a *app) lookup(path string, owner, perms bool) Result {
	r := Result{
		Path:            path,
		wantOwner:       owner,
		wantPermissions: perms,
	}

	if owner {
		id, err := a.owners.ResolveOwner(path)
		if err != nil {
			a.logger.WithField("path", path).WithError(err).Info("owner lookup failed")
			r.OwnerError = err.Error()
		} else {
			r.Owner = id.String()
		}
	}

	if perms {
		p, err := a.perms.FormatPermissions(path)
		if err != nil {
			a.logger.WithField("path", path).WithError(err).Info("permission lookup failed")
			r.PermissionsError = err.Error()
		} else {
			r.Permissions = p
		}
	}
	return r
}

// show looks up path and writes the result. It returns errLookupFailed when
// any query failed.
func (a *app) show(path string, owner, perms bool) error {
	r := a.lookup(path, owner, perms)
	if err := a.render(a.out, r); err != nil {
		return err
	}
	if r.Failed() {
		return errLookupFailed
	}
	return nil
}
