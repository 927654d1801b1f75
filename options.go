package fsmeta

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type options struct {
	fs     afero.Fs
	users  UserDatabase
	logger logrus.FieldLogger
}

// Option configures resolvers and formatters.
type Option func(*options)

// WithFs sets the filesystem used for existence checks and by the degraded
// owner resolver. Native calls always go to the operating system.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithUserDatabase replaces the user database used to map numeric owner ids
// to names.
func WithUserDatabase(db UserDatabase) Option {
	return func(o *options) {
		o.users = db
	}
}

// WithLogger sets the logger that receives debug output about failed native
// calls. By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.users == nil {
		o.users = OSUserDatabase{}
	}
	if o.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.logger = l
	}
	return o
}

func (o options) logCallFailure(path, call string, err error) {
	o.logger.WithFields(logrus.Fields{
		"path": path,
		"call": call,
	}).WithError(err).Debug("native call failed")
}
