package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/ledcube/scene"
	"github.com/lixenwraith/ledcube/tui"
)

func frontCamera(vp Viewport) *scene.Camera {
	cam := scene.NewPerspectiveCamera(75, vp.Aspect(), 0.1, 1000)
	cam.Position = mgl64.Vec3{0, 0, 5}
	cam.LookAt(mgl64.Vec3{0, 0, 0})
	return cam
}

func TestBlend(t *testing.T) {
	red := RGB{255, 0, 0}
	if got := Blend(RGBBlack, red, 1); got != red {
		t.Errorf("alpha 1: got %v", got)
	}
	if got := Blend(RGBBlack, red, 0); got != RGBBlack {
		t.Errorf("alpha 0: got %v", got)
	}
	if got := Blend(RGBBlack, red, 0.5); got != (RGB{128, 0, 0}) {
		t.Errorf("alpha 0.5: got %v", got)
	}
	if Contrast(RGBWhite) != RGBBlack || Contrast(RGBBlack) != RGBWhite {
		t.Error("contrast picks wrong text color")
	}
}

func TestBufferSetAndClear(t *testing.T) {
	buf := NewBuffer(4, 3, RGB{1, 2, 3})
	buf.Set(1, 1, 'x', RGBWhite, RGB{9, 9, 9}, BlendReplace, 1)
	buf.Set(-1, 0, 'y', RGBWhite, RGBWhite, BlendReplace, 1) // Out of bounds ignored

	if c := buf.Get(1, 1); c.Rune != 'x' || c.Bg != (RGB{9, 9, 9}) {
		t.Errorf("cell = %+v", c)
	}
	buf.Set(1, 1, 0, RGBBlack, RGB{}, BlendFgOnly, 1)
	if c := buf.Get(1, 1); c.Rune != 'x' || c.Fg != RGBBlack || c.Bg != (RGB{9, 9, 9}) {
		t.Errorf("fg-only write changed more than fg: %+v", c)
	}

	buf.Clear()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := buf.Get(x, y); c.Bg != (RGB{1, 2, 3}) || c.Rune != ' ' {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, c)
			}
		}
	}

	buf.Resize(2, 2)
	if w, h := buf.Size(); w != 2 || h != 2 {
		t.Errorf("size = %dx%d", w, h)
	}
}

func TestBufferFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	buf := NewBuffer(10, 2, RGBBlack)
	buf.Text(0, 0, "LED", RGBWhite)
	buf.Flush(screen)
	screen.Show()

	for i, want := range "LED" {
		r, _, _, _ := screen.GetContent(i, 0)
		if r != want {
			t.Errorf("col %d: got %q, want %q", i, r, want)
		}
	}
}

func TestDrawSceneOpaqueAndTransparent(t *testing.T) {
	vp := Viewport{X: 0, Y: 0, W: 40, H: 20}
	cam := frontCamera(vp)
	buf := NewBuffer(40, 20, RGBBlack)

	sc := scene.NewScene()
	m := scene.NewMesh(&scene.BoxGeometry{Size: 1}, &scene.Material{Color: 0xFF0000})
	sc.Add(m)

	DrawScene(buf, sc, cam, vp, RGBBlack)
	if c := buf.Get(20, 10); c.Bg != (RGB{255, 0, 0}) {
		t.Errorf("center cell bg = %v, want red", c.Bg)
	}
	if c := buf.Get(0, 0); c.Bg != RGBBlack {
		t.Errorf("corner cell bg = %v, want background", c.Bg)
	}

	m.Material.Transparent = true
	m.Material.Opacity = 0.5
	DrawScene(buf, sc, cam, vp, RGBBlack)
	if c := buf.Get(20, 10); c.Bg != (RGB{128, 0, 0}) {
		t.Errorf("translucent center bg = %v, want half red", c.Bg)
	}
}

func TestDrawScenePaintersOrder(t *testing.T) {
	vp := Viewport{W: 40, H: 20}
	cam := frontCamera(vp)
	buf := NewBuffer(40, 20, RGBBlack)
	geo := &scene.BoxGeometry{Size: 1}

	near := scene.NewMesh(geo, &scene.Material{Color: 0x00FF00})
	near.Position = mgl64.Vec3{0, 0, 1}
	far := scene.NewMesh(geo, &scene.Material{Color: 0x0000FF})
	far.Position = mgl64.Vec3{0, 0, -1}

	// Insertion order must not matter
	sc := scene.NewScene()
	sc.Add(near)
	sc.Add(far)

	DrawScene(buf, sc, cam, vp, RGBBlack)
	if c := buf.Get(20, 10); c.Bg != (RGB{0, 255, 0}) {
		t.Errorf("center bg = %v, want near mesh green", c.Bg)
	}
}

func TestDrawSceneWireframe(t *testing.T) {
	vp := Viewport{W: 40, H: 20}
	cam := frontCamera(vp)
	buf := NewBuffer(40, 20, RGBBlack)

	sc := scene.NewScene()
	sc.Add(scene.NewMesh(&scene.BoxGeometry{Size: 2}, &scene.Material{Color: 0xFF0000, Wireframe: true}))
	DrawScene(buf, sc, cam, vp, RGBBlack)

	edges := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			c := buf.Get(x, y)
			if c.Rune == edgeRune || c.Rune == cornerRune {
				edges++
				if c.Fg != (RGB{255, 0, 0}) {
					t.Fatalf("edge cell fg = %v", c.Fg)
				}
			}
		}
	}
	if edges == 0 {
		t.Fatal("wireframe drew no edges")
	}
	if c := buf.Get(20, 10); c.Rune != ' ' || c.Bg != RGBBlack {
		t.Errorf("wireframe interior filled: %+v", c)
	}
}

func TestViewportMapping(t *testing.T) {
	vp := Viewport{X: 2, Y: 1, W: 40, H: 20}
	if a := vp.Aspect(); a != 1 {
		t.Errorf("aspect = %v, want 1", a)
	}
	ndc := vp.CellCenterNDC(21, 10)
	if x, y := vp.NDCToCell(ndc); x != 21 || y != 10 {
		t.Errorf("round trip = (%d,%d)", x, y)
	}
	if vp.Contains(1, 1) || !vp.Contains(2, 1) {
		t.Error("contains is off by one")
	}
}

func TestDrawForm(t *testing.T) {
	buf := NewBuffer(30, 4, RGBBlack)
	form := tui.NewForm(
		tui.NewField("X", tui.KindNumber, "3"),
		tui.NewField("Color", tui.KindHex, "FF0000"),
	)
	form.Focus = 1

	if rows := DrawForm(buf, form, 0, 0, DefaultTheme); rows != 2 {
		t.Fatalf("rows = %d", rows)
	}
	if c := buf.Get(2, 0); c.Rune != 'X' {
		t.Errorf("label cell = %q", c.Rune)
	}
	if c := buf.Get(0, 1); c.Rune != '>' {
		t.Errorf("focus marker = %q", c.Rune)
	}
	bx := 2 + labelWidth
	if c := buf.Get(bx, 1); c.Rune != 'F' {
		t.Errorf("value cell = %q", c.Rune)
	}
	if c := buf.Get(bx+6, 1); !c.Rev {
		t.Error("cursor cell not reversed")
	}
}
