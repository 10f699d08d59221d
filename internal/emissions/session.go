package emissions

// Session pairs an Aggregator with the staged form input of each source.
//
// Staged input is what the user has typed but not yet submitted. Resetting
// it never touches recorded history.
type Session struct {
	agg    *Aggregator
	staged map[Source]Reading
}

// NewSession returns a Session around agg. A nil agg gets a fresh one.
func NewSession(agg *Aggregator) *Session {
	if agg == nil {
		agg = New()
	}
	return &Session{agg: agg, staged: make(map[Source]Reading, len(Sources()))}
}

// Aggregator returns the session's aggregator.
func (s *Session) Aggregator() *Aggregator {
	return s.agg
}

// Stage replaces the staged input for source.
func (s *Session) Stage(source Source, r Reading) {
	s.staged[source] = r
}

// Staged returns the staged input for source.
func (s *Session) Staged(source Source) Reading {
	return s.staged[source]
}

// Reset clears the staged input for source only.
func (s *Session) Reset(source Source) {
	delete(s.staged, source)
}

// Submit records the staged input for source. The staged input is kept so
// the form still shows what was submitted.
func (s *Session) Submit(source Source) (Entry, error) {
	return s.agg.Record(source, s.staged[source])
}
