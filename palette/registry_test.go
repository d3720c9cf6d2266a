package palette

import (
	"errors"
	"testing"
)

func TestDefault_Order(t *testing.T) {
	want := []string{"black", "grey", "white", "red", "green", "blue", "yellow", "cyan", "magenta"}
	reg := Default()
	if len(reg) != len(want) {
		t.Fatalf("len = %d, want %d", len(reg), len(want))
	}
	for i, name := range want {
		if reg[i].Name != name {
			t.Errorf("reg[%d] = %s, want %s", i, reg[i].Name, name)
		}
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	reg := Default()
	reg[0] = Color{Name: "pink", R: 255, G: 192, B: 203}

	if got := Default()[0]; got.Name != "black" {
		t.Fatalf("built-in registry was mutated: %v", got)
	}
}

func TestActive(t *testing.T) {
	reg := Default()

	for _, tc := range []struct {
		name string
		n    int
		want int
		err  error
	}{
		{name: "one", n: 1, want: 1},
		{name: "three", n: 3, want: 3},
		{name: "all", n: 9, want: 9},
		{name: "clamped", n: 20, want: 9},
		{name: "zero", n: 0, err: ErrInvalidColorCount},
		{name: "negative", n: -2, err: ErrInvalidColorCount},
	} {
		t.Run(tc.name, func(t *testing.T) {
			active, err := reg.Active(tc.n)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("err = %v, want %v", err, tc.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Active(%d): %v", tc.n, err)
			}
			if len(active) != tc.want {
				t.Fatalf("len = %d, want %d", len(active), tc.want)
			}
			for i := range active {
				if active[i] != reg[i] {
					t.Errorf("active[%d] = %v, want %v", i, active[i], reg[i])
				}
			}
		})
	}
}

func TestActive_EmptyRegistry(t *testing.T) {
	if _, err := Registry(nil).Active(3); !errors.Is(err, ErrEmptyRegistry) {
		t.Fatalf("err = %v, want %v", err, ErrEmptyRegistry)
	}
}

func TestIndex(t *testing.T) {
	reg := Default()

	for _, tc := range []struct {
		name    string
		r, g, b uint8
		want    string
	}{
		{name: "exact_red", r: 255, want: "red"},
		{name: "dark", r: 20, g: 10, b: 30, want: "black"},
		{name: "near_cyan", g: 240, b: 230, want: "cyan"},
		{name: "near_yellow", r: 250, g: 230, b: 40, want: "yellow"},
		// (191,191,191) is 3*64^2 away from both grey and white.
		{name: "tie_grey_white", r: 191, g: 191, b: 191, want: "grey"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := reg[reg.Index(tc.r, tc.g, tc.b)].Name; got != tc.want {
				t.Fatalf("Index(%d,%d,%d) = %s, want %s", tc.r, tc.g, tc.b, got, tc.want)
			}
		})
	}
}

func TestIndex_TieKeepsEarlier(t *testing.T) {
	reg := Registry{
		{Name: "first", R: 10},
		{Name: "second", R: 30},
	}
	if got := reg.Index(20, 0, 0); got != 0 {
		t.Fatalf("Index = %d, want 0", got)
	}

	reg[0], reg[1] = reg[1], reg[0]
	if got := reg.Index(20, 0, 0); got != 0 {
		t.Fatalf("Index after swap = %d, want 0", got)
	}
}

func TestFromPalette(t *testing.T) {
	reg := FromPalette(Default().colors())
	def := Default()
	for i := range def {
		if reg[i].R != def[i].R || reg[i].G != def[i].G || reg[i].B != def[i].B {
			t.Errorf("reg[%d] = %v, want %v", i, reg[i], def[i])
		}
	}
	if reg[3].Name != "#ff0000" {
		t.Errorf("reg[3].Name = %q, want #ff0000", reg[3].Name)
	}
}
