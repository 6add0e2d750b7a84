package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/diyorbe-beep/kino11111/messages"
)

// Envelope is the uniform wrapper every API response is serialized as.
type Envelope struct {
	ID      string      `json:"id"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// BuildEnvelope resolves a message key against the request language and
// returns the status code plus the envelope body. Exposed separately from the
// gin writers so non-HTTP callers (and tests) can use the same contract.
func BuildEnvelope(c *gin.Context, key string, context map[string]interface{}) (int, Envelope) {
	lang := ResolveLanguage(c)
	detail := messages.GetDetail(key, lang, context)
	return detail.StatusCode, Envelope{ID: detail.ID, Message: detail.Message}
}

// Success writes a success envelope with the key's own status code.
func Success(c *gin.Context, key string, data interface{}) {
	SuccessContext(c, key, data, nil)
}

// SuccessContext is Success with message-template interpolation values.
func SuccessContext(c *gin.Context, key string, data interface{}, context map[string]interface{}) {
	status, body := BuildEnvelope(c, key, context)
	body.Data = data
	c.JSON(status, body)
}

// Error writes an error envelope. errors is the structured per-field payload
// (field name -> per-language message map) and may be nil.
func Error(c *gin.Context, key string, errors interface{}) {
	ErrorContext(c, key, errors, nil)
}

// ErrorContext is Error with message-template interpolation values.
func ErrorContext(c *gin.Context, key string, errors interface{}, context map[string]interface{}) {
	status, body := BuildEnvelope(c, key, context)
	body.Errors = errors
	c.JSON(status, body)
}

// FieldErrors is the conventional shape of a validation errors payload.
type FieldErrors map[string]map[string]string

// ValidationError writes a VALIDATION_ERROR envelope with field details.
func ValidationError(c *gin.Context, errors interface{}) {
	Error(c, "VALIDATION_ERROR", errors)
}

// NotFound writes a not-found envelope for the given key.
func NotFound(c *gin.Context, key string) {
	Error(c, key, nil)
}

// Unauthorized writes an UNAUTHORIZED envelope.
func Unauthorized(c *gin.Context) {
	Error(c, "UNAUTHORIZED", nil)
}

// Forbidden writes a PERMISSION_DENIED envelope.
func Forbidden(c *gin.Context) {
	Error(c, "PERMISSION_DENIED", nil)
}

// InternalError logs the cause with full context, fires an alert, and writes
// a generic INTERNAL_SERVER_ERROR envelope. The cause never reaches the
// client body.
func InternalError(c *gin.Context, message string, err error) {
	LogError(message, err)
	AlertTelegram(message, err, c.ClientIP())
	Error(c, "INTERNAL_SERVER_ERROR", nil)
}
