package quiz

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestIDSet_PreservesInsertionOrder(t *testing.T) {
	s := NewIDSet()
	s.Add("c")
	s.Add("a")
	s.Add("b")
	s.Add("a") // duplicate

	want := []string{"c", "a", "b"}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestIDSet_RemoveKeepsOrder(t *testing.T) {
	s := NewIDSet("a", "b", "c")

	if !s.Remove("b") {
		t.Error("Remove(b) = false, want true")
	}
	if s.Remove("b") {
		t.Error("second Remove(b) = true, want false")
	}
	if got := s.Values(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Values = %v, want [a c]", got)
	}
	if s.Has("b") {
		t.Error("Has(b) after removal")
	}
}

func TestIDSet_SerializesAsOrderedArray(t *testing.T) {
	s := NewIDSet("x", "y", "z")

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `["x","y","z"]` {
		t.Errorf("marshal = %s, want ordered array", raw)
	}

	var back IDSet
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back.Values(), s.Values()) {
		t.Error("round trip changed contents")
	}
	if !back.Has("y") {
		t.Error("deserialized set lost membership lookups")
	}
}

func TestIDSet_EmptyMarshalsAsEmptyArray(t *testing.T) {
	raw, err := json.Marshal(NewIDSet())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("marshal = %s, want []", raw)
	}
}
