package ospace

// SpaceStats is a point-in-time summary across all Entries.
type SpaceStats struct {
	Types   int
	Values  int
	Waiters int
}

// EntryStats is a point-in-time summary of a single type's Entry.
type EntryStats struct {
	Values         int
	ValueIndexKeys int
	RangeIndexKeys int
	Waiters        int
}

func (sp *Space) Stats() SpaceStats {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	var s SpaceStats
	s.Types = len(sp.entries)
	for _, e := range sp.entries {
		s.Values += len(e.members)
		s.Waiters += len(e.waiters)
	}
	return s
}

// EntryStatsOf reports on the Entry for type T; zero stats if no value
// of T was ever written and no waiter for it registered.
func EntryStatsOf[T any](sp *Space) EntryStats {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	e := sp.existingEntry(typeOf[T]())
	if e == nil {
		return EntryStats{}
	}
	var s EntryStats
	s.Values = len(e.members)
	s.Waiters = len(e.waiters)
	for _, buckets := range e.values {
		s.ValueIndexKeys += len(buckets)
	}
	for _, m := range e.ranges {
		s.RangeIndexKeys += m.Len()
	}
	return s
}
