package locator

import (
	"time"

	"github.com/fomox/tracescout/internal/testsupport"
)

// memSearcher binds the shared in-memory searcher to the "ws" root used
// throughout these tests.
type memSearcher struct {
	*testsupport.MemSearcher
}

func newMemSearcher() *memSearcher {
	return &memSearcher{testsupport.NewMemSearcher()}
}

func (m *memSearcher) add(rel string, modTime time.Time) *memSearcher {
	m.Add("ws", rel, modTime)
	return m
}

func (m *memSearcher) addUnstattable(rel string) *memSearcher {
	m.AddUnstattable("ws", rel)
	return m
}
