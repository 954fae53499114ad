package core

// Logger is the logging surface used by the rendering core.
// *logging.Logger from github.com/op/go-logging satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

// NopLogger discards all messages
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...interface{})   {}
func (NopLogger) Infof(format string, args ...interface{})    {}
func (NopLogger) Noticef(format string, args ...interface{})  {}
func (NopLogger) Warningf(format string, args ...interface{}) {}
