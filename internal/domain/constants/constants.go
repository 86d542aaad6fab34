// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider types selected by configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
