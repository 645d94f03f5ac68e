package typedenv

// Mode identifies the runtime deployment mode used to select mode-scoped
// fallback and log entries.
type Mode string

// Recognized modes. Any other value of the mode variable matches no
// mode-scoped entry, which is treated as "nothing configured", not an error.
const (
	Development Mode = "development"
	Test        Mode = "test"
	Production  Mode = "production"
)

// DefaultModeKey is the store key holding the current mode when no custom
// key is configured via WithModeKey.
const DefaultModeKey = "GO_ENV"
