package repository

// KeyPrefix namespaces mapping keys in shared key-value stores.
const KeyPrefix = "cal:"

// Key returns the store key for an event id.
func Key(eventID string) string {
	return KeyPrefix + eventID
}
