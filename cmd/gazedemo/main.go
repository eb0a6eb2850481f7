// gazedemo visualizes the sensor pipeline in a terminal: a simulated gaze
// ray sweeps across a small 3D scene, and sensor events drive highlight,
// status and audio feedback.
//
// Controls: h/j/k/l or arrows move the gaze, space toggles the trigger,
// q or Ctrl+C quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gazekit/config"
	"github.com/lixenwraith/gazekit/cursor"
	"github.com/lixenwraith/gazekit/picker"
	"github.com/lixenwraith/gazekit/scene"
	"github.com/lixenwraith/gazekit/sensor"
	"github.com/lixenwraith/gazekit/vmath"
)

const (
	sceneDepth  = -10.0 // All demo objects sit on this Z plane
	gazeStep    = 0.5   // Scene units per keypress
	projScaleX  = 4.0   // Scene-to-cell projection scale
	projScaleY  = 2.0   // Terminal cells are ~2x taller than wide
	enterToneHz = 660
	clickToneHz = 880
	toneMs      = 40
)

type demoObject struct {
	node  *scene.Node
	glyph rune
	style tcell.Style
}

type demo struct {
	screen        tcell.Screen
	width, height int

	sc      *scene.Scene
	manager *picker.Manager
	gaze    *cursor.Controller
	objects []*demoObject

	// Gaze aim point on the scene plane
	aimX, aimY float64
	trigger    bool

	// Updated by the sensor listener during ProcessFrame
	hovered map[*scene.Node]bool
	latched map[*scene.Node]bool // Suppresses repeated trigger tones while held
	status  string

	audioInit bool
}

func newDemo(cfg config.Config) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	d := &demo{
		screen:  screen,
		sc:      scene.New(),
		hovered: make(map[*scene.Node]bool),
		latched: make(map[*scene.Node]bool),
		status:  "move the gaze over an object",
	}
	d.width, d.height = screen.Size()

	d.manager = picker.NewManager(d.sc, cfg.Pool.Capacity, cfg.Picker.MaxRange)
	controllers, err := setupControllers(cfg, d.manager)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	d.gaze = controllers[0]

	d.buildScene()

	if err := d.initAudio(); err != nil {
		// Non-fatal, demo can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return d, nil
}

// setupControllers builds the configured controller set and registers it
// for dispatch. The first controller is driven by the keyboard; any extra
// declared controllers participate in picking once their device feeds
// samples. An empty declaration falls back to a single gaze controller
func setupControllers(cfg config.Config, m *picker.Manager) ([]*cursor.Controller, error) {
	controllers, err := cfg.BuildControllers()
	if err != nil {
		return nil, err
	}
	if len(controllers) == 0 {
		controllers = append(controllers, cursor.NewController("gaze", cursor.KindGaze))
	}
	for _, c := range controllers {
		m.AddController(c)
	}
	return controllers, nil
}

func (d *demo) buildScene() {
	layout := []struct {
		x, y   float64
		radius float64
		glyph  rune
		color  tcell.Color
	}{
		{-3, 1.5, 1.0, 'O', tcell.ColorRed},
		{0, -1, 1.2, '@', tcell.ColorGreen},
		{3, 0.5, 0.8, '*', tcell.ColorBlue},
		{-1, -2, 0.6, '+', tcell.ColorYellow},
	}

	sens := d.manager.NewSensor()
	sens.AddListener(sensor.ListenerFunc(d.onSensorEvent))

	for _, l := range layout {
		n := scene.NewNode(
			fmt.Sprintf("%c", l.glyph),
			vmath.Vec3{X: l.x, Y: l.y, Z: sceneDepth},
			scene.SphereBounds{Radius: l.radius},
		)
		d.sc.Add(n)
		sens.Attach(n)
		d.objects = append(d.objects, &demoObject{
			node:  n,
			glyph: l.glyph,
			style: tcell.StyleDefault.Foreground(l.color),
		})
	}
}

// onSensorEvent consumes each event within the callback; the instance is
// recycled as soon as this returns
func (d *demo) onSensorEvent(e *sensor.Event) {
	wasHovered := d.hovered[e.Object()]
	d.hovered[e.Object()] = e.IsOver()

	switch {
	case e.IsOver() && !wasHovered:
		d.status = fmt.Sprintf("enter %s at (%.1f, %.1f, %.1f)",
			e.Object().Name(), e.HitX(), e.HitY(), e.HitZ())
		d.playTone(enterToneHz)
	case e.IsOver() && e.IsActive() && !d.latched[e.Object()]:
		d.status = fmt.Sprintf("trigger on %s", e.Object().Name())
		d.playTone(clickToneHz)
	case !e.IsOver():
		d.status = fmt.Sprintf("exit %s", e.Object().Name())
	}
	d.latched[e.Object()] = e.IsOver() && e.IsActive()
}

func (d *demo) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		d.audioInit = true
	}
	return err
}

func (d *demo) playTone(hz float64) {
	if !d.audioInit {
		return
	}
	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(toneMs * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, hz)
	speaker.Play(beep.Take(duration, sine))
}

// submitGaze feeds the current aim point to the controller as a device sample
func (d *demo) submitGaze() {
	dir := vmath.V3Normalize(vmath.Vec3{X: d.aimX, Y: d.aimY, Z: sceneDepth})
	d.gaze.Submit(cursor.Sample{
		Origin: vmath.Vec3{},
		Dir:    dir,
		Active: d.trigger,
	})
}

func (d *demo) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return false
		case tcell.KeyLeft:
			d.aimX -= gazeStep
		case tcell.KeyRight:
			d.aimX += gazeStep
		case tcell.KeyUp:
			d.aimY += gazeStep
		case tcell.KeyDown:
			d.aimY -= gazeStep
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				d.aimX -= gazeStep
			case 'l':
				d.aimX += gazeStep
			case 'k':
				d.aimY += gazeStep
			case 'j':
				d.aimY -= gazeStep
			case ' ':
				d.trigger = !d.trigger
			}
		}
	case *tcell.EventResize:
		d.width, d.height = d.screen.Size()
		d.screen.Sync()
	}
	return true
}

// project maps a scene position on the demo plane to terminal cells
func (d *demo) project(p vmath.Vec3) (int, int) {
	cx, cy := d.width/2, d.height/2
	return cx + int(p.X*projScaleX), cy - int(p.Y*projScaleY)
}

func (d *demo) draw() {
	d.screen.Clear()

	for _, obj := range d.objects {
		x, y := d.project(obj.node.Position())
		style := obj.style
		if d.hovered[obj.node] {
			style = style.Bold(true).Reverse(true)
		}
		d.screen.SetContent(x, y, obj.glyph, nil, style)
	}

	// Gaze reticle
	gx, gy := d.project(vmath.Vec3{X: d.aimX, Y: d.aimY, Z: sceneDepth})
	reticle := '+'
	if d.trigger {
		reticle = 'x'
	}
	d.screen.SetContent(gx, gy, reticle, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	// Status line
	for i, r := range d.status {
		if i >= d.width {
			break
		}
		d.screen.SetContent(i, d.height-1, r, nil, tcell.StyleDefault)
	}

	d.screen.Show()
}

func (d *demo) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- d.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !d.handleInput(ev) {
				return
			}

		case <-ticker.C:
			d.submitGaze()
			d.manager.ProcessFrame()
			d.draw()
		}
	}
}

func (d *demo) cleanup() {
	if d.audioInit {
		speaker.Close()
	}
	d.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}

	d, err := newDemo(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer d.cleanup()

	d.run()
}
