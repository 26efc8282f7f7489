package leads

import "sync"

// RecentStore keeps the most recent leads in memory so agents can eyeball
// incoming submissions without digging through the CRM. It is a bounded
// buffer, not a system of record.
type RecentStore struct {
	mu    sync.RWMutex
	max   int
	leads []*Lead
}

// NewRecentStore creates a store that retains up to max leads.
func NewRecentStore(max int) *RecentStore {
	if max <= 0 {
		max = 100
	}
	return &RecentStore{max: max}
}

// Add records a lead, evicting the oldest when the buffer is full.
func (s *RecentStore) Add(lead *Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = append(s.leads, lead)
	if len(s.leads) > s.max {
		s.leads = s.leads[len(s.leads)-s.max:]
	}
}

// List returns the retained leads, newest first.
func (s *RecentStore) List() []*Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Lead, len(s.leads))
	for i, l := range s.leads {
		out[len(s.leads)-1-i] = l
	}
	return out
}
