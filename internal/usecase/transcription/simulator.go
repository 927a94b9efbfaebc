package transcription

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSimulationInterval is the tick spacing when none is requested.
const DefaultSimulationInterval = 1200 * time.Millisecond

// TickFunc ingests one scripted chunk. Returning false aborts the
// simulation (e.g. the session was stopped out from under it).
type TickFunc func(text string) bool

type simulation struct {
	done chan struct{}
	once sync.Once
}

func (s *simulation) cancel() {
	s.once.Do(func() { close(s.done) })
}

// Simulator runs at most one scripted chunk feed per meeting. Each tick
// re-enters the same serialized ingestion path used for live chunks; the
// cancellation token is checked before every tick so no tick mutates state
// after Stop.
type Simulator struct {
	mu     sync.Mutex
	active map[uuid.UUID]*simulation
}

// NewSimulator creates an empty simulator registry.
func NewSimulator() *Simulator {
	return &Simulator{active: make(map[uuid.UUID]*simulation)}
}

// Running reports whether a simulation is in flight for the meeting.
func (s *Simulator) Running(meetingID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[meetingID]
	return ok
}

// Start launches a simulation feeding one chunk per tick until the script
// is exhausted, the tick aborts, or Stop is called. Returns false when a
// simulation is already running for the meeting.
func (s *Simulator) Start(meetingID uuid.UUID, chunks []string, interval time.Duration, tick TickFunc) bool {
	if interval <= 0 {
		interval = DefaultSimulationInterval
	}

	s.mu.Lock()
	if _, exists := s.active[meetingID]; exists {
		s.mu.Unlock()
		return false
	}
	sim := &simulation{done: make(chan struct{})}
	s.active[meetingID] = sim
	s.mu.Unlock()

	go s.run(meetingID, sim, chunks, interval, tick)
	return true
}

// Stop cancels the meeting's simulation if one is running. Idempotent:
// stopping twice, or stopping a finished simulation, is a no-op.
func (s *Simulator) Stop(meetingID uuid.UUID) {
	s.mu.Lock()
	sim, ok := s.active[meetingID]
	s.mu.Unlock()
	if ok {
		sim.cancel()
	}
}

func (s *Simulator) run(meetingID uuid.UUID, sim *simulation, chunks []string, interval time.Duration, tick TickFunc) {
	defer s.remove(meetingID, sim)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	cursor := 0
	for {
		select {
		case <-sim.done:
			return
		case <-ticker.C:
			// A cancel racing the ticker must win: never tick after Stop.
			select {
			case <-sim.done:
				return
			default:
			}

			if cursor >= len(chunks) || !tick(chunks[cursor]) {
				sim.cancel()
				return
			}
			cursor++
			if cursor >= len(chunks) {
				sim.cancel()
				return
			}
		}
	}
}

func (s *Simulator) remove(meetingID uuid.UUID, sim *simulation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if current, ok := s.active[meetingID]; ok && current == sim {
		delete(s.active, meetingID)
	}
}
