package tween

// Task runs a callback after an interval, optionally looping.
//
// A task accumulates the dt it is fed and fires whenever the accumulator
// reaches the interval, keeping the remainder. One large update that spans
// several intervals fires once per interval crossed, so timing stays
// correct after a stalled frame. Capture arguments in the callback
// closure.
type Task struct {
	fn       func()
	interval float64
	loops    int
	infinite bool
	timer    float64
	done     bool
}

// NewTask creates a task that runs fn every interval units of time.
// A loop count of -1 repeats forever. Counts of 0 and 1 both run the
// callback exactly once; larger counts run it that many times.
func NewTask(fn func(), interval float64, loops int) (*Task, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	if loops < -1 {
		return nil, ErrLoopCount
	}
	return &Task{
		fn:       fn,
		interval: interval,
		loops:    loops,
		infinite: loops == -1,
	}, nil
}

// Update advances the task by dt, firing the callback for every interval
// crossed. A nonpositive interval fires once per update. Finished tasks
// ignore further updates.
func (t *Task) Update(dt float64) {
	if t.done {
		return
	}
	t.timer += dt
	if t.interval <= 0 {
		t.fire()
		return
	}
	for !t.done && t.timer >= t.interval {
		t.timer -= t.interval
		t.fire()
	}
}

func (t *Task) fire() {
	t.fn()
	if t.infinite {
		return
	}
	t.loops--
	if t.loops <= 0 {
		t.done = true
	}
}

// Done reports whether the task has used up its loops.
func (t *Task) Done() bool {
	return t.done
}
