package smsgateway

// Logger is the logging interface the gateway depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver records outbound message outcomes. Nil-safe: the client
// works without one when metrics are disabled.
type MetricsObserver interface {
	ObserveSMS(kind string, err error)
}
