package engine

// callback is a deferred action counted in simulation frames
type callback struct {
	fn      func()
	frames  int
	current int
}

// Scheduler runs deferred callbacks on simulation frames
// The sequential queue is FIFO: only the head counts down, so delays accumulate
// Parallel callbacks count down independently
type Scheduler struct {
	sequential []callback
	parallel   []callback
	epoch      uint64 // Bumped by Clear so in-flight parallel survivors are discarded
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Sequence appends fn to the sequential queue; it fires frames ticks after reaching the head
func (s *Scheduler) Sequence(frames int, fn func()) {
	s.sequential = append(s.sequential, callback{fn: fn, frames: frames})
}

// Parallel schedules fn to fire frames ticks from now
func (s *Scheduler) Parallel(frames int, fn func()) {
	s.parallel = append(s.parallel, callback{fn: fn, frames: frames})
}

// Tick advances both queues by one frame and fires any callbacks that are due
// Callbacks may schedule further callbacks or Clear the scheduler
func (s *Scheduler) Tick() {
	if len(s.sequential) > 0 {
		head := &s.sequential[0]
		head.current++
		if head.current >= head.frames {
			fn := head.fn
			s.sequential = s.sequential[1:]
			fn()
		}
	}

	if len(s.parallel) == 0 {
		return
	}

	epoch := s.epoch
	pending := s.parallel
	s.parallel = nil

	var survivors []callback
	for i := range pending {
		cb := pending[i]
		cb.current++
		if cb.current < cb.frames {
			survivors = append(survivors, cb)
			continue
		}
		cb.fn()
		if s.epoch != epoch {
			// Cleared mid-tick: keep only what was scheduled after the clear
			return
		}
	}

	// Survivors keep their order ahead of callbacks added during this tick
	s.parallel = append(survivors, s.parallel...)
}

// Clear drops every pending callback
func (s *Scheduler) Clear() {
	s.sequential = nil
	s.parallel = nil
	s.epoch++
}
