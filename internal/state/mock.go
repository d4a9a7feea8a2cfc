package state

// Mock is a test double for Manager.
type Mock struct {
	prefs  map[string]DrawerPrefs
	closed bool
}

// NewMock creates a new mock preference store for testing.
func NewMock() *Mock {
	return &Mock{prefs: make(map[string]DrawerPrefs)}
}

func (m *Mock) GetPrefs(edge string) (*DrawerPrefs, error) {
	if p, ok := m.prefs[edge]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *Mock) SavePrefs(prefs DrawerPrefs) {
	m.prefs[prefs.Edge] = prefs
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
