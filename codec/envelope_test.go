package codec

import "testing"

type pair struct {
	A string `json:"a"`
	B int    `json:"b"`
}

func TestEnvelopeRoundTrip(t *testing.T) {
	c := Envelope[pair]{Inner: JSON[pair]{}}
	want := pair{A: "x", B: 7}

	b, err := c.Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestEnvelopeRejectsForeignBytes(t *testing.T) {
	c := Envelope[pair]{Inner: JSON[pair]{}}

	// a bare JSON record written without the frame must not decode
	if _, err := c.Decode([]byte(`{"a":"x","b":7}`)); err == nil {
		t.Fatalf("expected error on unframed record")
	}
	if _, err := c.Decode(nil); err == nil {
		t.Fatalf("expected error on empty record")
	}
}

func TestLimitCapsDecode(t *testing.T) {
	c := Limit[pair]{Inner: JSON[pair]{}, MaxDecode: 4}
	if _, err := c.Decode([]byte(`{"a":"x","b":7}`)); err == nil {
		t.Fatalf("expected error on oversized payload")
	}
}
