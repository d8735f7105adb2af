// internal/adapter/logger/types.go
package logger

// Keys of a log entry
const (
	FieldTimestamp = "timestamp"
	FieldService   = "service"
	FieldHostname  = "hostname"
	FieldRequestID = "request_id"
	FieldAction    = "action"
	FieldMessage   = "message"
	FieldDetails   = "details"
	FieldError     = "error"
)
