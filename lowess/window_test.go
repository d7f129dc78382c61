package lowess

import "testing"

func TestHalfWindow(t *testing.T) {
	cases := []struct {
		name      string
		n         int
		bandwidth float64
		want      int
	}{
		{"stata boundary n10 b0.2", 10, 0.2, 0},
		{"full width n5", 5, 1.0, 2},
		{"n100 b0.5", 100, 0.5, 24},
		{"tiny bandwidth clamps to zero", 3, 0.1, 0},
		{"negative before clamp", 4, 0.1, 0},
		{"n3 b0.9", 3, 0.9, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := halfWindow(c.n, c.bandwidth); got != c.want {
				t.Errorf("halfWindow(%d, %v): got %d, want %d", c.n, c.bandwidth, got, c.want)
			}
		})
	}
}

func TestHalfWindowMonotoneInBandwidth(t *testing.T) {
	const n = 37
	prev := 0
	for i := 1; i <= 100; i++ {
		b := float64(i) / 100
		k := halfWindow(n, b)
		if k < prev {
			t.Fatalf("halfWindow(%d, %v) = %d, smaller than %d at lower bandwidth", n, b, k, prev)
		}
		prev = k
	}
}

func TestWindowBounds(t *testing.T) {
	cases := []struct {
		name           string
		i, k, n        int
		wantLo, wantHi int
	}{
		{"interior", 5, 2, 10, 3, 7},
		{"clamped left", 0, 2, 10, 0, 2},
		{"clamped right", 9, 2, 10, 7, 9},
		{"near left", 1, 3, 10, 0, 4},
		{"zero half window", 4, 0, 10, 4, 4},
		{"window covers everything", 2, 100, 5, 0, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lo, hi := windowBounds(c.i, c.k, c.n)
			if lo != c.wantLo || hi != c.wantHi {
				t.Errorf("windowBounds(%d, %d, %d): got [%d, %d], want [%d, %d]",
					c.i, c.k, c.n, lo, hi, c.wantLo, c.wantHi)
			}
			if lo > c.i || hi < c.i {
				t.Errorf("window [%d, %d] does not contain center %d", lo, hi, c.i)
			}
		})
	}
}
