// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
