package planner

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Listener is notified about every finished calculation, which wasn't superseded by newer plan.
type Listener interface {
	Calculated(result Result)
	Failed(err error)
}

// Dispatcher serializes recalculation requests. Only the latest submitted plan is calculated,
// results of plans replaced during the calculation are discarded.
type Dispatcher struct {
	planner  *Planner
	listener Listener
	delay    time.Duration
	log      log.FieldLogger

	mu      sync.Mutex
	pending *Plan
	version uint64

	wake      chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewDispatcher starts the worker. Delay is the debounce window after the first request.
func NewDispatcher(planner *Planner, listener Listener, delay time.Duration) *Dispatcher {
	d := &Dispatcher{
		planner:  planner,
		listener: listener,
		delay:    delay,
		log:      planner.log,
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go d.run()
	return d
}

// Submit replaces any plan waiting for calculation.
func (d *Dispatcher) Submit(plan Plan) {
	d.mu.Lock()
	d.pending = &plan
	d.version++
	version := d.version
	d.mu.Unlock()

	d.log.WithField("version", version).Info("plan changed")

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Cancel drops the waiting plan and the result of the running calculation.
func (d *Dispatcher) Cancel() {
	d.mu.Lock()
	d.pending = nil
	d.version++
	version := d.version
	d.mu.Unlock()

	d.log.WithField("version", version).Info("calculation cancelled")
}

// Close stops the worker, pending plan is dropped.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.stop)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for {
		select {
		case <-d.stop:
			return
		case <-d.wake:
		}

		if d.delay > 0 {
			timer := time.NewTimer(d.delay)
			select {
			case <-d.stop:
				timer.Stop()
				return
			case <-timer.C:
			}
		}

		d.calculateLatest()
	}
}

func (d *Dispatcher) calculateLatest() {
	d.mu.Lock()
	plan := d.pending
	version := d.version
	d.pending = nil
	d.mu.Unlock()

	if plan == nil {
		return
	}

	result, err := d.planner.Calculate(*plan)

	d.mu.Lock()
	superseded := version != d.version
	d.mu.Unlock()

	if superseded {
		d.log.WithField("version", version).Debug("result discarded, plan was changed")
		return
	}

	if err != nil {
		d.log.WithFields(log.Fields{
			"version": version,
			"error":   err,
		}).Warn("calculation failed")
		d.listener.Failed(err)
		return
	}

	d.log.WithField("version", version).Info("plan calculated")
	d.listener.Calculated(result)
}
