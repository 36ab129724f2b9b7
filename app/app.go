// Package app owns the LED cube session: scene, camera, grid, form and the
// single-threaded event loop that ties them to a tcell screen.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/ledcube/config"
	"github.com/lixenwraith/ledcube/cube"
	"github.com/lixenwraith/ledcube/render"
	"github.com/lixenwraith/ledcube/scene"
	"github.com/lixenwraith/ledcube/selection"
	"github.com/lixenwraith/ledcube/tui"
)

const (
	// Orbit radius used when the configured camera would sit inside the cube center
	minOrbitDistance = 2.0
	panelWidth       = render.FormRowWidth + 3
	statusRows       = 1
)

// Cue is the audio surface the app drives
type Cue interface {
	selection.Cue
	Close()
}

type dragState struct {
	active         bool
	moved          bool
	startX, startY int
	lastX, lastY   int
}

// App is the application state; event handlers are its methods
type App struct {
	cfg    *config.Config
	screen tcell.Screen
	log    *zap.Logger
	cue    Cue
	ready  bool // Cues stay quiet during startup

	scene     *scene.Scene
	camera    *scene.Camera
	controls  *scene.OrbitControls
	grid      *cube.Grid
	highlight *scene.Mesh

	form                   *tui.Form
	fieldX, fieldY, fieldZ *tui.Field
	fieldColor             *tui.Field
	ctrl                   *selection.Controller

	buf      *render.Buffer
	bg       render.RGB
	theme    render.Theme
	viewport render.Viewport
	width    int
	height   int

	status    string
	statusErr bool
	drag      dragState
}

// New builds the scene and forces the initial selection from the field defaults
// The screen must already be initialized
func New(screen tcell.Screen, cfg *config.Config, log *zap.Logger, cue Cue) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cue == nil {
		cue = silent{}
	}

	ledColor, err := parseConfigColor("cube.leds.default_color", cfg.Cube.LEDs.DefaultColor)
	if err != nil {
		return nil, err
	}
	markColor, err := parseConfigColor("cube.highlight.color", cfg.Cube.Highlight.Color)
	if err != nil {
		return nil, err
	}
	bgColor, err := parseConfigColor("render.background", cfg.Render.Background)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		screen: screen,
		log:    log,
		cue:    cue,
		scene:  scene.NewScene(),
		bg:     render.FromColor(bgColor),
		theme:  render.DefaultTheme,
	}

	a.grid, err = cube.New(a.scene, cube.Settings{
		Size:         cfg.Cube.Size,
		LEDSize:      cfg.Cube.LEDs.Size,
		DefaultColor: ledColor,
		Opacity:      cfg.Cube.LEDs.Opacity,
	})
	if err != nil {
		return nil, err
	}

	a.highlight = scene.NewMesh(
		&scene.BoxGeometry{Size: cfg.Cube.Highlight.Size},
		&scene.Material{Color: markColor, Opacity: 0.5, Wireframe: true},
	)
	a.scene.Add(a.highlight)

	a.setupCamera()
	a.setupForm()

	a.ctrl = selection.NewController(a.grid, a.highlight, selection.Fields{
		X:     a.fieldX,
		Y:     a.fieldY,
		Z:     a.fieldZ,
		Color: a.fieldColor,
	}, log, gatedCue{a})

	a.buf = render.NewBuffer(0, 0, a.bg)
	a.layout()

	if err := a.ctrl.SelectFromFields(); err != nil {
		return nil, fmt.Errorf("initial selection: %w", err)
	}
	a.ready = true

	log.Info("Cube ready",
		zap.Int("size", a.grid.Size()),
		zap.Int("voxels", a.grid.Len()))
	return a, nil
}

func parseConfigColor(key, s string) (scene.Color, error) {
	c, err := selection.ParseHex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", config.ErrInvalidConfig, key, err)
	}
	return c, nil
}

func (a *App) setupCamera() {
	cc := a.cfg.Camera
	center := a.grid.Center()

	a.camera = scene.NewPerspectiveCamera(cc.FOV, 1, cc.Near, cc.Far)
	a.camera.Position = mgl64.Vec3{center.X(), center.Y(), center.Z() * cc.DistanceFactor}
	if a.camera.Position.Sub(center).Len() < minOrbitDistance {
		a.camera.Position = center.Add(mgl64.Vec3{0, 0, minOrbitDistance})
	}

	a.controls = scene.NewOrbitControls(a.camera, center)
	a.controls.EnableZoom = a.cfg.Controls.EnableZoom
	a.controls.RotateSpeed = a.cfg.Controls.RotateSpeed
	a.controls.Update()
}

func (a *App) setupForm() {
	n := a.grid.Size()
	newCoord := func(label string) *tui.Field {
		f := tui.NewField(label, tui.KindNumber, "0")
		f.MaxLen = 4
		f.Min, f.Max, f.Bounded = 0, n-1, true
		return f
	}
	a.fieldX = newCoord("X")
	a.fieldY = newCoord("Y")
	a.fieldZ = newCoord("Z")
	a.fieldColor = tui.NewField("Color", tui.KindHex, "")
	a.fieldColor.MaxLen = 6

	a.form = tui.NewForm(a.fieldX, a.fieldY, a.fieldZ, a.fieldColor)
	a.form.OnChange(a.onFieldChange)
}

// layout sizes the viewport, buffer and camera aspect to the screen
func (a *App) layout() {
	w, h := a.screen.Size()
	a.width, a.height = w, h

	pw := min(panelWidth, w/2)
	a.viewport = render.Viewport{X: 0, Y: 0, W: max(w-pw, 0), H: max(h-statusRows, 0)}
	a.camera.SetAspect(a.viewport.Aspect())
	a.buf.Resize(w, h)
}

// Grid exposes the voxel grid
func (a *App) Grid() *cube.Grid { return a.grid }

// Camera exposes the camera
func (a *App) Camera() *scene.Camera { return a.camera }

// Viewport returns the cell rectangle the cube is drawn in
func (a *App) Viewport() render.Viewport { return a.viewport }

// Status returns the last status message and whether it reports an error
func (a *App) Status() (string, bool) { return a.status, a.statusErr }

func (a *App) setStatus(msg string, isErr bool) {
	a.status, a.statusErr = msg, isErr
}

func (a *App) reportErr(err error) {
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	a.setStatus("", false)
}

// Run drives the event loop until quit or ctx is done
// The screen is finalized before Run returns
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	defer func() {
		close(stop)
		a.screen.Fini()
		<-done
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.Render.FPS))
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.log.Info("Quit requested")
				return nil
			}
		case <-ticker.C:
			a.Draw()
		}
	}
}

// gatedCue forwards to the app cue once startup is complete
type gatedCue struct{ a *App }

func (g gatedCue) Selected() {
	if g.a.ready {
		g.a.cue.Selected()
	}
}

func (g gatedCue) Applied() {
	if g.a.ready {
		g.a.cue.Applied()
	}
}

type silent struct{}

func (silent) Selected() {}
func (silent) Applied()  {}
func (silent) Close()    {}
