// Package selection keeps the coordinate fields, the color field, the highlight
// marker and pointer picks consistent with one another.
//
// The current selection is never stored: it is whatever voxel the three
// coordinate fields name.
package selection

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/ledcube/cube"
	"github.com/lixenwraith/ledcube/scene"
)

// Field is an editable text value
type Field interface {
	Value() string
	SetValue(string)
}

// Fields are the four inputs the controller reads and writes
type Fields struct {
	X, Y, Z Field
	Color   Field
}

// Cue is notified after successful state changes
type Cue interface {
	Selected()
	Applied()
}

type silentCue struct{}

func (silentCue) Selected() {}
func (silentCue) Applied()  {}

// Controller binds the form to the grid
type Controller struct {
	grid      *cube.Grid
	highlight *scene.Mesh
	fields    Fields
	raycaster scene.Raycaster
	log       *zap.Logger
	cue       Cue
}

// NewController wires a controller; nil logger and cue are replaced with no-ops
func NewController(grid *cube.Grid, highlight *scene.Mesh, fields Fields, log *zap.Logger, cue Cue) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if cue == nil {
		cue = silentCue{}
	}
	return &Controller{
		grid:      grid,
		highlight: highlight,
		fields:    fields,
		log:       log,
		cue:       cue,
	}
}

// SelectByCoordinates moves the highlight to (x, y, z) and syncs all fields
func (c *Controller) SelectByCoordinates(x, y, z int) error {
	v, err := c.grid.Get(x, y, z)
	if err != nil {
		c.log.Warn("Selection rejected", zap.Error(err))
		return err
	}
	c.selectVoxel(v)
	return nil
}

// SelectFromFields is the change handler for the coordinate fields
func (c *Controller) SelectFromFields() error {
	x, y, z, err := c.coordinates()
	if err != nil {
		c.log.Warn("Selection rejected", zap.Error(err))
		return err
	}
	return c.SelectByCoordinates(x, y, z)
}

// SelectByPick casts a ray from cam through ndc and selects the first voxel hit
// A miss changes nothing and reports false
func (c *Controller) SelectByPick(ndc mgl64.Vec2, cam *scene.Camera, objects []*scene.Mesh) (bool, error) {
	c.raycaster.SetFromCamera(ndc, cam)
	hit, ok := c.raycaster.First(objects)
	if !ok {
		c.log.Debug("Pick missed", zap.Float64("ndc_x", ndc.X()), zap.Float64("ndc_y", ndc.Y()))
		return false, nil
	}

	v, err := c.grid.At(hit.Object.Position)
	if err != nil {
		return false, fmt.Errorf("pick resolved outside cube: %w", err)
	}
	c.selectVoxel(v)
	return true, nil
}

// ApplyColor parses hex and writes it to the voxel named by the coordinate fields
func (c *Controller) ApplyColor(hex string) error {
	v, err := c.Current()
	if err != nil {
		c.log.Warn("Color not applied", zap.Error(err))
		return err
	}
	color, err := ParseHex(hex)
	if err != nil {
		c.log.Warn("Color not applied", zap.String("voxel", v.String()), zap.Error(err))
		return err
	}

	v.SetColor(color)
	c.log.Debug("Color applied", zap.String("voxel", v.String()), zap.String("color", FormatHex(color)))
	c.cue.Applied()
	return nil
}

// ApplyColorField is the change handler for the color field
func (c *Controller) ApplyColorField() error {
	return c.ApplyColor(c.fields.Color.Value())
}

// Current returns the voxel named by the coordinate fields
func (c *Controller) Current() (*cube.Voxel, error) {
	x, y, z, err := c.coordinates()
	if err != nil {
		return nil, err
	}
	return c.grid.Get(x, y, z)
}

// Highlight returns the marker mesh
func (c *Controller) Highlight() *scene.Mesh {
	return c.highlight
}

func (c *Controller) selectVoxel(v *cube.Voxel) {
	c.highlight.Position = v.Position()

	c.fields.X.SetValue(fmt.Sprint(v.X))
	c.fields.Y.SetValue(fmt.Sprint(v.Y))
	c.fields.Z.SetValue(fmt.Sprint(v.Z))
	c.showColor(v)

	c.log.Debug("Voxel selected", zap.String("voxel", v.String()))
	c.cue.Selected()
}

func (c *Controller) showColor(v *cube.Voxel) {
	c.fields.Color.SetValue(FormatHex(v.Color()))
}

func (c *Controller) coordinates() (x, y, z int, err error) {
	n := c.grid.Size()
	if x, err = ParseCoordinate(c.fields.X.Value(), n); err != nil {
		return 0, 0, 0, fmt.Errorf("x: %w", err)
	}
	if y, err = ParseCoordinate(c.fields.Y.Value(), n); err != nil {
		return 0, 0, 0, fmt.Errorf("y: %w", err)
	}
	if z, err = ParseCoordinate(c.fields.Z.Value(), n); err != nil {
		return 0, 0, 0, fmt.Errorf("z: %w", err)
	}
	return x, y, z, nil
}
