package frame

import (
	"bytes"
	"math/rand/v2"
	"testing"
)

func TestBitPackRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xFF, 0xA5, 0x3C, 0x01}
	bitStream := PackBits(data)
	if len(bitStream) != len(data)*8 {
		t.Fatalf("bit stream length = %d, want %d", len(bitStream), len(data)*8)
	}
	got := UnpackBits(bitStream)
	if !bytes.Equal(got, data) {
		t.Fatalf("got %x, want %x", got, data)
	}
}

func TestBitPackMSBFirst(t *testing.T) {
	bitStream := PackBits([]byte{0x80})
	want := []int{1, 0, 0, 0, 0, 0, 0, 0}
	for i, b := range want {
		if bitStream[i] != b {
			t.Fatalf("bit %d: got %d want %d", i, bitStream[i], b)
		}
	}
}

func TestFrameSerializeParseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for trial := 0; trial < 100; trial++ {
		var nonce [NonceSize]byte
		for i := range nonce {
			nonce[i] = byte(rng.IntN(256))
		}
		ct := make([]byte, rng.IntN(64))
		for i := range ct {
			ct[i] = byte(rng.IntN(256))
		}

		f := &Frame{Nonce: nonce, Ciphertext: ct}
		wire := f.Serialize()

		got, err := Parse(wire, 1<<20)
		if err != nil {
			t.Fatalf("trial %d: parse error: %v", trial, err)
		}
		if got.Nonce != nonce {
			t.Fatalf("trial %d: nonce mismatch", trial)
		}
		if !bytes.Equal(got.Ciphertext, ct) {
			t.Fatalf("trial %d: ciphertext mismatch", trial)
		}
	}
}

func TestParseRejectsImplausibleLength(t *testing.T) {
	f := &Frame{Ciphertext: make([]byte, 10)}
	wire := f.Serialize()

	if _, err := Parse(wire, 4); err == nil {
		t.Fatal("expected error for length exceeding sanity bound")
	}
	if _, err := Parse(wire[:HeaderSize+2], 1<<20); err == nil {
		t.Fatal("expected error for truncated ciphertext")
	}
	if _, err := Parse(wire[:HeaderSize-1], 1<<20); err == nil {
		t.Fatal("expected error for truncated header")
	}
}

func TestCipherIsInvolution(t *testing.T) {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	nonce, err := NewNonce()
	if err != nil {
		t.Fatal(err)
	}
	plaintext := []byte("the quick brown fox jumps over the lazy dog")

	ct, err := Apply(key, nonce, plaintext)
	if err != nil {
		t.Fatal(err)
	}
	pt2, err := Apply(key, nonce, ct)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(pt2, plaintext) {
		t.Fatalf("got %q, want %q", pt2, plaintext)
	}
}

func TestApplyRejectsBadKeyLength(t *testing.T) {
	var nonce [NonceSize]byte
	if _, err := Apply(make([]byte, 10), nonce, []byte("x")); err == nil {
		t.Fatal("expected error for short key")
	}
}

func TestRandomBytesLengthAndVariety(t *testing.T) {
	a, err := RandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandomBytes(32)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("unexpected lengths %d %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Fatal("two independent draws were identical — suspicious")
	}
}
