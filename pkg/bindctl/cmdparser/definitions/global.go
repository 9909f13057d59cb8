package definitions

import "time"

// DefaultServerAddress is the default apiserver endpoint of bindstor
const DefaultServerAddress = "http://127.0.0.1:8080"

// Global settings, read from bindctl flags
var (
	Debug         bool
	ServerAddress string
	Timeout       time.Duration
)
