package overlay

import (
	"image/color"
	"testing"
)

func TestBaseColor(t *testing.T) {
	cases := []struct {
		role Role
		want Color
	}{
		{Tank, 0xFFFF3333},
		{MeleeDPS, 0xFF0000FF},
		{RangedDPS, 0xFF0000FF},
		{Healer, 0xFF00FF00},
		{Role(42), 0xFF00FF00},
	}
	for _, c := range cases {
		t.Run(c.role.String(), func(t *testing.T) {
			if got := BaseColor(c.role); got != c.want {
				t.Fatalf("BaseColor(%v) = %v, want %v", c.role, got, c.want)
			}
		})
	}
}

func TestBrightness(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
		want     uint8
	}{
		{"far", 15, 255},
		{"boundary", 10, 255},
		// Close markers are not dimmed either: both clamp bounds are 255.
		{"close", 5, 255},
		{"touching", 0, 255},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Brightness(c.distance); got != c.want {
				t.Fatalf("Brightness(%v) = %d, want %d", c.distance, got, c.want)
			}
		})
	}
}

func TestColorScale(t *testing.T) {
	c := NewColor(200, 100, 50, 0xFF)
	if got := c.Scale(255); got != c {
		t.Fatalf("full brightness changed color: %v -> %v", c, got)
	}
	half := c.Scale(127)
	if half.R() != 99 || half.G() != 49 || half.B() != 24 || half.A() != 0xFF {
		t.Fatalf("unexpected scaled channels: r=%d g=%d b=%d a=%d", half.R(), half.G(), half.B(), half.A())
	}
	if got := MarkerColor(Tank, 3); got != TankColor {
		t.Fatalf("MarkerColor(Tank, 3) = %v, want %v", got, TankColor)
	}
}

func TestColorChannels(t *testing.T) {
	if MeleeColor.R() != 0xFF || MeleeColor.G() != 0 || MeleeColor.B() != 0 {
		t.Fatalf("melee color should be red, got %v", MeleeColor)
	}
	if HealerColor.G() != 0xFF || HealerColor.R() != 0 || HealerColor.B() != 0 {
		t.Fatalf("healer color should be green, got %v", HealerColor)
	}

	got := color.RGBAModel.Convert(MeleeColor).(color.RGBA)
	want := color.RGBA{R: 0xFF, A: 0xFF}
	if got != want {
		t.Fatalf("RGBA conversion = %+v, want %+v", got, want)
	}

	translucent := NewColor(0xFF, 0, 0, 0x80)
	r, _, _, a := translucent.RGBA()
	if r != a {
		t.Fatalf("expected premultiplied red %d to equal alpha %d", r, a)
	}
}
