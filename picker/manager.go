package picker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gazekit/cursor"
	"github.com/lixenwraith/gazekit/parameter"
	"github.com/lixenwraith/gazekit/scene"
	"github.com/lixenwraith/gazekit/sensor"
	"github.com/lixenwraith/gazekit/service"
)

var _ service.Service = (*Manager)(nil)

// Manager is the per-frame dispatcher tying controllers, picker and
// sensors together. It owns the shared event pool and implements the
// service.Service lifecycle
//
// Frame flow, per controller:
//  1. Drain queued device samples
//  2. Cast the controller ray against the scene
//  3. Hand each sensor its hit subset (empty set still runs exit logic)
//
// Event acquire/populate/deliver/recycle happens inside the sensors;
// the manager guarantees each sensor sees every controller every frame
type Manager struct {
	mu          sync.RWMutex
	pool        *sensor.Pool
	picker      *Picker
	sensors     []*sensor.Sensor
	controllers []*cursor.Controller

	interval time.Duration
	running  atomic.Bool
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewManager creates a dispatcher over the given scene
// poolCapacity and maxRange <= 0 select the parameter defaults
func NewManager(sc *scene.Scene, poolCapacity int, maxRange float64) *Manager {
	return &Manager{
		pool:     sensor.NewPool(poolCapacity),
		picker:   NewPicker(sc, maxRange),
		interval: parameter.FrameInterval,
	}
}

// Pool returns the shared event pool
func (m *Manager) Pool() *sensor.Pool {
	return m.pool
}

// NewSensor creates a sensor backed by the shared event pool and
// registers it for dispatch
func (m *Manager) NewSensor() *sensor.Sensor {
	s := sensor.New(m.pool)
	m.mu.Lock()
	m.sensors = append(m.sensors, s)
	m.mu.Unlock()
	return s
}

// AddController registers an input source for the frame loop
func (m *Manager) AddController(c *cursor.Controller) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.controllers = append(m.controllers, c)
}

// ProcessFrame runs one dispatch pass
// Exported so hosts with their own render loop (and tests) can drive
// dispatch deterministically instead of using Start
func (m *Manager) ProcessFrame() {
	m.mu.RLock()
	sensors := m.sensors
	controllers := m.controllers
	m.mu.RUnlock()

	for _, c := range controllers {
		c.Drain()
		if !c.Enabled() {
			continue
		}

		hits := m.picker.Pick(c.Ray())

		for _, s := range sensors {
			var observed []sensor.Hit
			for _, h := range hits {
				if s.Observes(h.Node) {
					observed = append(observed, sensor.Hit{Node: h.Node, Point: h.Point})
				}
			}
			s.ProcessFrame(c, observed)
		}
	}
}

// --- service.Service ---

func (m *Manager) Name() string {
	return "picker"
}

func (m *Manager) Dependencies() []string {
	return nil
}

// Init accepts an optional frame interval override
func (m *Manager) Init(args ...any) error {
	for _, a := range args {
		switch v := a.(type) {
		case time.Duration:
			if v <= 0 {
				return fmt.Errorf("picker: frame interval must be positive, got %v", v)
			}
			m.interval = v
		default:
			return fmt.Errorf("picker: unsupported init arg %T", a)
		}
	}
	return nil
}

// Start launches the dispatch loop at the configured frame interval
func (m *Manager) Start() error {
	if !m.running.CompareAndSwap(false, true) {
		return fmt.Errorf("picker: already running")
	}
	m.done = make(chan struct{})
	m.wg.Add(1)
	go m.loop()
	return nil
}

// Stop halts the dispatch loop; idempotent
func (m *Manager) Stop() error {
	if !m.running.CompareAndSwap(true, false) {
		return nil
	}
	close(m.done)
	m.wg.Wait()
	return nil
}

func (m *Manager) loop() {
	defer m.wg.Done()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.ProcessFrame()
		}
	}
}
