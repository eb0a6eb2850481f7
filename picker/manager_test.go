package picker

import (
	"testing"
	"time"

	"github.com/lixenwraith/gazekit/cursor"
	"github.com/lixenwraith/gazekit/scene"
	"github.com/lixenwraith/gazekit/sensor"
	"github.com/lixenwraith/gazekit/vmath"
)

type captured struct {
	object *scene.Node
	over   bool
	active bool
	hit    vmath.Vec3
}

func setupManager(t *testing.T) (*Manager, *cursor.Controller, *scene.Node, *[]captured) {
	t.Helper()

	sc := scene.New()
	node := scene.NewNode("panel", vmath.Vec3{Z: -10}, scene.SphereBounds{Radius: 2})
	sc.Add(node)

	m := NewManager(sc, 0, 0)

	var events []captured
	s := m.NewSensor()
	s.Attach(node)
	s.AddListener(sensor.ListenerFunc(func(e *sensor.Event) {
		events = append(events, captured{
			object: e.Object(),
			over:   e.IsOver(),
			active: e.IsActive(),
			hit:    e.CopyHitPoint(),
		})
	}))

	ctrl := cursor.NewController("gaze", cursor.KindGaze)
	m.AddController(ctrl)

	return m, ctrl, node, &events
}

func TestEndToEndDispatch(t *testing.T) {
	m, ctrl, node, events := setupManager(t)

	// Aim straight at the node, trigger held
	ctrl.Submit(cursor.Sample{Dir: vmath.Vec3{Z: -1}, Active: true})
	m.ProcessFrame()

	if len(*events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(*events))
	}
	ev := (*events)[0]
	if ev.object != node {
		t.Error("Expected event for the aimed node")
	}
	if !ev.over || !ev.active {
		t.Errorf("Expected over+active event, got over=%v active=%v", ev.over, ev.active)
	}
	if ev.hit.Z != -8 {
		t.Errorf("Expected hit on near surface z=-8, got %v", ev.hit)
	}
}

func TestHoverThenExit(t *testing.T) {
	m, ctrl, _, events := setupManager(t)

	ctrl.Submit(cursor.Sample{Dir: vmath.Vec3{Z: -1}})
	m.ProcessFrame()
	m.ProcessFrame() // No new sample, ray unchanged, still over

	// Aim away
	ctrl.Submit(cursor.Sample{Dir: vmath.Vec3{X: 1}})
	m.ProcessFrame()
	m.ProcessFrame() // Still away, no further events

	if len(*events) != 3 {
		t.Fatalf("Expected hover, hover, exit; got %d events", len(*events))
	}
	if !(*events)[0].over || !(*events)[1].over {
		t.Error("Expected repeated hover events while over")
	}
	if (*events)[2].over {
		t.Error("Expected single terminating exit event")
	}
}

func TestDisabledControllerSkipped(t *testing.T) {
	m, ctrl, _, events := setupManager(t)

	ctrl.SetEnabled(false)
	ctrl.Submit(cursor.Sample{Dir: vmath.Vec3{Z: -1}})
	m.ProcessFrame()

	if len(*events) != 0 {
		t.Errorf("Expected no events from disabled controller, got %d", len(*events))
	}
}

func TestPoolReuseAcrossFrames(t *testing.T) {
	m, ctrl, _, _ := setupManager(t)

	ctrl.Submit(cursor.Sample{Dir: vmath.Vec3{Z: -1}})
	for i := 0; i < 100; i++ {
		m.ProcessFrame()
	}

	// One event per frame, recycled each time: steady state caches one
	if got := m.Pool().Cached(); got != 1 {
		t.Errorf("Expected steady-state pool occupancy 1, got %d", got)
	}
}

func TestServiceLifecycle(t *testing.T) {
	m, ctrl, _, events := setupManager(t)

	if m.Name() != "picker" {
		t.Errorf("Expected service name picker, got %q", m.Name())
	}
	if deps := m.Dependencies(); len(deps) != 0 {
		t.Errorf("Expected no dependencies, got %v", deps)
	}

	if err := m.Init(time.Millisecond); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := m.Init("bogus"); err == nil {
		t.Error("Expected Init to reject unsupported arg")
	}

	if err := m.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := m.Start(); err == nil {
		t.Error("Expected second Start to fail while running")
	}

	ctrl.Submit(cursor.Sample{Dir: vmath.Vec3{Z: -1}})
	time.Sleep(20 * time.Millisecond)

	if err := m.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if err := m.Stop(); err != nil {
		t.Errorf("Expected idempotent Stop, got %v", err)
	}

	if len(*events) == 0 {
		t.Error("Expected the dispatch loop to deliver events")
	}
}
