package event

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)
