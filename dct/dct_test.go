package dct

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		fill func(b *Block)
	}{
		{"flat", func(b *Block) {
			for i := range b {
				b[i] = 128
			}
		}},
		{"gradient", func(b *Block) {
			for y := 0; y < Size; y++ {
				for x := 0; x < Size; x++ {
					b[y*Size+x] = float64((y*Size + x) * 4 % 256)
				}
			}
		}},
		{"checkerboard", func(b *Block) {
			for y := 0; y < Size; y++ {
				for x := 0; x < Size; x++ {
					if (x+y)%2 == 0 {
						b[y*Size+x] = 10
					} else {
						b[y*Size+x] = 245
					}
				}
			}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Block
			tc.fill(&b)

			c := Forward(&b)
			got := Inverse(c)

			for i := range b {
				if diff := math.Abs(got[i] - b[i]); diff > 1e-6 {
					t.Fatalf("sample %d: round trip diff %g exceeds tolerance (got %g want %g)", i, diff, got[i], b[i])
				}
			}
		})
	}
}

func TestForwardInverseRoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 200; trial++ {
		var b Block
		for i := range b {
			b[i] = float64(rng.IntN(256))
		}

		c := Forward(&b)
		got := Inverse(c)

		for i := range b {
			if diff := math.Abs(got[i] - b[i]); diff > 1e-6 {
				t.Fatalf("trial %d sample %d: round trip diff %g", trial, i, diff)
			}
		}
	}
}

func TestFlatBlockACCoefficientsVanish(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = 128
	}
	c := Forward(&b)
	// A flat block has no AC energy: every AC coefficient must vanish.
	for i := 1; i < blockLen; i++ {
		if math.Abs(c[i]) > 1e-9 {
			t.Fatalf("AC coefficient %d not zero for flat block: %g", i, c[i])
		}
	}
}
