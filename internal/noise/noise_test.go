package noise

import (
	"errors"
	"testing"

	"github.com/Faultbox/hexmap/internal/falloff"
	"github.com/Faultbox/hexmap/internal/terrain"
)

func testParams() Params {
	return Params{
		Width:       24,
		Height:      16,
		Scale:       12,
		Seed:        42,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

func providers() map[string]HeightSource {
	return map[string]HeightSource{
		"simplex": Simplex{},
		"perlin":  Perlin{},
	}
}

func TestHeightFieldRangeAndShape(t *testing.T) {
	for name, src := range providers() {
		t.Run(name, func(t *testing.T) {
			p := testParams()
			field, err := src.HeightField(p)
			if err != nil {
				t.Fatalf("HeightField: %v", err)
			}
			if field.Width != p.Width || field.Height != p.Height {
				t.Fatalf("size = %dx%d", field.Width, field.Height)
			}

			var lo, hi float32 = 1, 0
			for _, v := range field.Values {
				if v < 0 || v > 1 {
					t.Fatalf("value %v out of [0,1]", v)
				}
				lo = min(lo, v)
				hi = max(hi, v)
			}
			// Normalization stretches the sampled range to the full interval
			if lo != 0 || hi != 1 {
				t.Errorf("range = [%v, %v], want [0, 1]", lo, hi)
			}
		})
	}
}

func TestHeightFieldDeterministic(t *testing.T) {
	for name, src := range providers() {
		t.Run(name, func(t *testing.T) {
			a, err := src.HeightField(testParams())
			if err != nil {
				t.Fatal(err)
			}
			b, err := src.HeightField(testParams())
			if err != nil {
				t.Fatal(err)
			}
			for i := range a.Values {
				if a.Values[i] != b.Values[i] {
					t.Fatalf("value %d differs between runs", i)
				}
			}

			p := testParams()
			p.Seed++
			c, err := src.HeightField(p)
			if err != nil {
				t.Fatal(err)
			}
			same := true
			for i := range a.Values {
				if a.Values[i] != c.Values[i] {
					same = false
					break
				}
			}
			if same {
				t.Error("different seeds produced identical fields")
			}
		})
	}
}

func TestHeightFieldZeroOctaves(t *testing.T) {
	p := testParams()
	p.Octaves = 0
	field, err := Simplex{}.HeightField(p)
	if err != nil {
		t.Fatalf("HeightField: %v", err)
	}
	for i, v := range field.Values {
		if v != 0 {
			t.Fatalf("value %d = %v, want 0 for a flat field", i, v)
		}
	}
}

func TestHeightFieldNonPositiveScale(t *testing.T) {
	p := testParams()
	p.Scale = 0
	if _, err := (Simplex{}).HeightField(p); err != nil {
		t.Fatalf("scale 0 should be clamped, got %v", err)
	}
}

func TestHeightFieldInvalidSize(t *testing.T) {
	p := testParams()
	p.Width = 0
	if _, err := (Perlin{}).HeightField(p); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestNew(t *testing.T) {
	for _, kind := range []string{"", "simplex", "opensimplex", "perlin"} {
		if _, err := New(kind); err != nil {
			t.Errorf("New(%q): %v", kind, err)
		}
	}
	if _, err := New("value"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

type constSource float32

func (c constSource) HeightField(p Params) (*terrain.HeightField, error) {
	f := terrain.NewHeightField(p.Width, p.Height)
	for i := range f.Values {
		f.Values[i] = float32(c)
	}
	return f, nil
}

type failingSource struct{}

var errBoom = errors.New("boom")

func (failingSource) HeightField(Params) (*terrain.HeightField, error) { return nil, errBoom }

func TestQuantized(t *testing.T) {
	regions := []terrain.Region{
		{Name: "water", Height: 0.3},
		{Name: "land", Height: 1},
	}
	p := Params{Width: 8, Height: 8}

	rm, err := Quantized{Source: constSource(0.9)}.RegionMap(p, nil, regions)
	if err != nil {
		t.Fatalf("RegionMap: %v", err)
	}
	for i, r := range rm.Indices {
		if r != 1 {
			t.Fatalf("cell %d = %d, want 1 without falloff", i, r)
		}
	}

	// With falloff the corners drop to zero height, the centre stays high
	ff := falloff.Generate(8, 8)
	rm, err = Quantized{Source: constSource(0.9)}.RegionMap(p, ff, regions)
	if err != nil {
		t.Fatalf("RegionMap: %v", err)
	}
	if rm.At(0, 0) != 0 {
		t.Errorf("corner region = %d, want 0", rm.At(0, 0))
	}
	if rm.At(4, 4) != 1 {
		t.Errorf("centre region = %d, want 1", rm.At(4, 4))
	}
}

func TestQuantizedErrors(t *testing.T) {
	regions := []terrain.Region{{Name: "only", Height: 1}}
	p := Params{Width: 4, Height: 4}

	if _, err := (Quantized{Source: failingSource{}}).RegionMap(p, nil, regions); !errors.Is(err, errBoom) {
		t.Errorf("error = %v, want errBoom", err)
	}
	if _, err := (Quantized{Source: constSource(0)}).RegionMap(p, nil, nil); !errors.Is(err, terrain.ErrNoRegions) {
		t.Errorf("error = %v, want ErrNoRegions", err)
	}
	if _, err := (Quantized{Source: constSource(0)}).RegionMap(p, falloff.Generate(3, 3), regions); err == nil {
		t.Error("expected error for mismatched falloff size")
	}
}
