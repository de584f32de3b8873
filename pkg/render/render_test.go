package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/floorplan/pkg/floorplan"
)

func exampleScene(t *testing.T) (Scene, floorplan.Node) {
	t.Helper()
	root, err := floorplan.ParseLines([]string{"V", "1(2,3)", "H", "2(4,1)", "3(2,2)"})
	if err != nil {
		t.Fatal(err)
	}
	size, err := floorplan.ComputeDimensions(root)
	if err != nil {
		t.Fatal(err)
	}
	placements, err := floorplan.ComputeCoordinates(root, floorplan.Point{})
	if err != nil {
		t.Fatal(err)
	}
	return NewScene(size, floorplan.Point{}, placements), root
}

func TestSceneFrame(t *testing.T) {
	s, _ := exampleScene(t)
	tests := []struct {
		label int
		want  Box
	}{
		// leaf 1 at (0,0) size (2,3) fills the full height
		{1, Box{X: 0, Y: 0, W: 20, H: 30}},
		// leaf 2 at (2,2) size (4,1) sits on top
		{2, Box{X: 20, Y: 0, W: 40, H: 10}},
		// leaf 3 at (2,0) size (2,2) sits at the bottom
		{3, Box{X: 20, Y: 10, W: 20, H: 20}},
	}
	for _, tt := range tests {
		p := s.Placements[tt.label-1]
		if got := s.Frame(p, 10, 0); got != tt.want {
			t.Errorf("Frame(leaf %d) = %+v, want %+v", tt.label, got, tt.want)
		}
	}
	if w, h := s.Canvas(10, 5); w != 70 || h != 40 {
		t.Errorf("Canvas() = %dx%d, want 70x40", w, h)
	}
}

func TestSceneFrameOrigin(t *testing.T) {
	p := floorplan.Placement{Rect: floorplan.Rect{Label: 1, Width: 1, Height: 1}, X: 5, Y: 5}
	s := NewScene(floorplan.Size{Width: 1, Height: 1}, floorplan.Point{X: 5, Y: 5}, []floorplan.Placement{p})
	if got := s.Frame(p, 2, 1); got != (Box{X: 1, Y: 1, W: 2, H: 2}) {
		t.Errorf("Frame() = %+v", got)
	}
}

func TestRenderSVG(t *testing.T) {
	s, _ := exampleScene(t)
	var buf bytes.Buffer
	if err := RenderSVG(&buf, s, WithScale(10), WithMargin(0), WithLabels()); err != nil {
		t.Fatalf("RenderSVG() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`<svg`,
		`width="60"`,
		`height="30"`,
		`id="leaf-1"`,
		`id="leaf-2"`,
		`id="leaf-3"`,
		`<title>floorplan</title>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if strings.Count(out, "<text") != 3 {
		t.Errorf("expected 3 labels, got %d", strings.Count(out, "<text"))
	}
}

func TestRenderSVGNoLabels(t *testing.T) {
	s, _ := exampleScene(t)
	var buf bytes.Buffer
	if err := RenderSVG(&buf, s); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<text") {
		t.Error("labels should be off by default")
	}
}

func TestRenderPNG(t *testing.T) {
	s, _ := exampleScene(t)
	var buf bytes.Buffer
	if err := RenderPNG(&buf, s, WithScale(10), WithMargin(5), WithPalette([]string{"#ff0000"})); err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 70 || b.Dy() != 40 {
		t.Errorf("image = %dx%d, want 70x40", b.Dx(), b.Dy())
	}

	// center of leaf 1 is filled with the single palette color
	r, g, bl, _ := img.At(15, 20).RGBA()
	if r>>8 != 0xff || g>>8 != 0 || bl>>8 != 0 {
		t.Errorf("leaf 1 center = (%d,%d,%d), want red", r>>8, g>>8, bl>>8)
	}
}

func TestRenderPNGTooLarge(t *testing.T) {
	s := NewScene(floorplan.Size{Width: 100000, Height: 100000}, floorplan.Point{}, nil)
	if err := RenderPNG(&bytes.Buffer{}, s); err == nil {
		t.Error("expected error for oversized canvas")
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		path   string
		format string
		ok     bool
	}{
		{"out.svg", "svg", true},
		{"out.PNG", "png", true},
		{"dir.v2/out.pdf", "pdf", true},
		{"out.txt", "txt", false},
		{"out", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatFromPath(tt.path)
		if got != tt.format || ok != tt.ok {
			t.Errorf("FormatFromPath(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.format, tt.ok)
		}
	}
	if err := ValidateFormat("gif"); err == nil {
		t.Error("gif should be rejected")
	}
	if err := ValidateFormat("svg"); err != nil {
		t.Errorf("svg should be accepted: %v", err)
	}
}

func TestToDOT(t *testing.T) {
	_, root := exampleScene(t)
	dot := ToDOT(root)

	if !strings.HasPrefix(dot, "digraph Floorplan {") {
		t.Error("ToDOT() should start with 'digraph Floorplan {'")
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Error("ToDOT() should end with '}'")
	}
	for _, want := range []string{
		`label="V (6,3)"`,
		`label="H (4,3)"`,
		`label="1(2,3)"`,
		`label="2(4,1)"`,
		`label="3(2,2)"`,
		`n0 -> n1 [label="L"]`,
		`n0 -> n2 [label="R"]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTUnmeasured(t *testing.T) {
	root := floorplan.NewCut(floorplan.Horizontal, floorplan.NewLeaf(1, 1, 1), floorplan.NewLeaf(2, 1, 1))
	dot := ToDOT(root)
	if !strings.Contains(dot, `label="H"`) {
		t.Errorf("unmeasured cut should be labeled with its kind only:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(nil)
	if !strings.Contains(dot, "digraph Floorplan {") || strings.Contains(dot, "n0") {
		t.Errorf("ToDOT(nil) = %q", dot)
	}
}
