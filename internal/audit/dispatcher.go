package audit

import "log"

type Event struct {
	ProviderID uint
	SubjectID  string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

// Recorder is where dispatched events end up; Logger writes them to the
// audit table.
type Recorder interface {
	Log(providerID uint, subjectID, action, entity, entityID string, metadata any) error
}

type Dispatcher struct {
	recorder Recorder
	queue    chan Event
}

func NewDispatcher(recorder Recorder) *Dispatcher {
	d := &Dispatcher{
		recorder: recorder,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.recorder.Log(
			ev.ProviderID,
			ev.SubjectID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue must never block or fail a booking
		log.Println("audit queue full, dropping event")
	}
}
