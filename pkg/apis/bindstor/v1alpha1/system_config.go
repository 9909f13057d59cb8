package v1alpha1

// defaults
const (
	DefaultMatchMaxRetries   = 0
	DefaultEventHistoryLimit = 256
)

// SystemConfig of the binder member
type SystemConfig struct {
	// MaxRetries limits the binder's matching retries per task, 0 means no
	// limit
	MaxRetries int `json:"maxRetries,omitempty"`

	// EventHistoryLimit bounds the in-memory transition history
	EventHistoryLimit int `json:"eventHistoryLimit,omitempty"`
}
