package isometric

// Scheduler defers entity applies to the next frame boundary. It is a set:
// scheduling an ID that is already pending is a no-op, so bursts of events
// for one entity collapse into a single apply. IDs flush in the order they
// were first scheduled.
type Scheduler struct {
	order   []string
	pending map[string]struct{}
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[string]struct{})}
}

// Schedule queues id. It reports whether id was newly added.
func (s *Scheduler) Schedule(id string) bool {
	if _, ok := s.pending[id]; ok {
		return false
	}
	s.pending[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Cancel drops id from the queue if present.
func (s *Scheduler) Cancel(id string) {
	if _, ok := s.pending[id]; !ok {
		return
	}
	delete(s.pending, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// Pending reports whether id is queued.
func (s *Scheduler) Pending(id string) bool {
	_, ok := s.pending[id]
	return ok
}

// Len returns the number of queued IDs.
func (s *Scheduler) Len() int {
	return len(s.order)
}

// Drain empties the queue and returns its IDs in schedule order. IDs
// scheduled while the caller processes the result go to the next drain.
func (s *Scheduler) Drain() []string {
	if len(s.order) == 0 {
		return nil
	}
	out := s.order
	s.order = nil
	clear(s.pending)
	return out
}
