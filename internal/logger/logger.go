package logger

// Logger is the diagnostic sink used across the application. I/O
// failures are logged here and swallowed; nothing is surfaced to the
// UI.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}
