package infer

// Stats are the two counters this pass exposes: how many instructions had
// their inferred Type changed during the run, and how many property loads
// resolved to exactly one contributing store (the "unique store" case worth
// tracking because it is the strongest signal downstream passes get from
// this analysis).
type Stats struct {
	InstructionsChanged int
	UniqueStoreLoads    int
}

func (s *Stats) merge(other Stats) {
	s.InstructionsChanged += other.InstructionsChanged
	s.UniqueStoreLoads += other.UniqueStoreLoads
}
