package get_salon_config

type Logger interface {
	Error(format string, v ...interface{})
}
