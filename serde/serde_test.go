package serde_test

import (
	"testing"

	"cssel/serde"
	"cssel/shape"
)

func TestSerialize_FieldOrderIsDeclarationOrder(t *testing.T) {
	got, err := serde.Serialize(shape.NewRectangle(10, 20))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	want := `{"width":10,"height":20}`
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerialize_Sequences(t *testing.T) {
	got, err := serde.Serialize([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if got != `["a","b","c"]` {
		t.Errorf("Serialize() = %q, want ordered sequence", got)
	}
}

func TestDeserialize_RoundTrip(t *testing.T) {
	orig := shape.NewRectangle(3, 4)

	text, err := serde.Serialize(orig)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	back, err := serde.Deserialize[shape.Rectangle](text)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}

	if back != orig {
		t.Errorf("round trip = %+v, want %+v", back, orig)
	}
	// derived property agrees because it is computed, not stored
	if back.Area() != orig.Area() {
		t.Errorf("Area() after round trip = %v, want %v", back.Area(), orig.Area())
	}
}

func TestDeserialize_PlainDataCast(t *testing.T) {
	// fields are taken as-is, nothing validates or rescales them
	r, err := serde.Deserialize[shape.Rectangle](`{"width":-1,"height":2}`)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if r.Width != -1 || r.Height != 2 {
		t.Errorf("Deserialize() = %+v, want fields copied verbatim", r)
	}
}

func TestDeserialize_MalformedPropagates(t *testing.T) {
	if _, err := serde.Deserialize[shape.Rectangle](`{"width":`); err == nil {
		t.Fatal("Deserialize() of malformed text: error = nil, want json error")
	}
}

func TestJSON_PairAgreesWithFreeFunctions(t *testing.T) {
	ser, de := serde.JSON[shape.Rectangle]()

	text, err := ser.Serialize(shape.NewRectangle(6, 7))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	r, err := de.Deserialize(text)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if r.Area() != 42 {
		t.Errorf("Area() = %v, want 42", r.Area())
	}
}
