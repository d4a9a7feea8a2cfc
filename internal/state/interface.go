package state

// Interface defines the preference store contract for dependency
// injection and testing.
type Interface interface {
	GetPrefs(edge string) (*DrawerPrefs, error)
	SavePrefs(prefs DrawerPrefs)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
