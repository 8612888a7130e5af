package tag

import "testing"

func TestSet_AddHasRemove(t *testing.T) {
	var s Set
	if s.Has(Dhatu) {
		t.Fatal("expected Dhatu unset")
	}
	s.Add(Dhatu)
	if !s.Has(Dhatu) {
		t.Fatal("expected Dhatu set")
	}
	s.Remove(Dhatu)
	if s.Has(Dhatu) {
		t.Fatal("expected Dhatu cleared")
	}
}

func TestSet_SpansMultipleWords(t *testing.T) {
	// FlagIttva sits near the end of the enumeration; if numWords were
	// computed wrong this would alias some earlier tag's bit.
	s := New(Dhatu, FlagIttva)
	if !s.Has(Dhatu) || !s.Has(FlagIttva) {
		t.Fatal("expected both ends of the enumeration set")
	}
	if s.Has(Krt) {
		t.Fatal("unrelated tag must not be set")
	}
}

func TestSet_AnyAll(t *testing.T) {
	s := New(Dhatu, Pada)
	if !s.Any(Krt, Pada) {
		t.Fatal("expected Any to find Pada")
	}
	if s.Any(Krt, Taddhita) {
		t.Fatal("expected Any to find nothing")
	}
	if !s.All(Dhatu, Pada) {
		t.Fatal("expected All to hold")
	}
	if s.All(Dhatu, Krt) {
		t.Fatal("expected All to fail when one tag is missing")
	}
}

func TestSet_Union(t *testing.T) {
	a := New(Dhatu)
	b := New(Pada)
	u := a.Union(b)
	if !u.Has(Dhatu) || !u.Has(Pada) {
		t.Fatal("expected union of both tags")
	}
}

func TestSet_Equal(t *testing.T) {
	a := New(Dhatu, Pada)
	b := New(Pada, Dhatu)
	if !a.Equal(b) {
		t.Fatal("expected sets built from the same tags in different order to be equal")
	}
	c := New(Dhatu)
	if a.Equal(c) {
		t.Fatal("expected sets with different members to differ")
	}
}

func TestSet_ValueSemantics(t *testing.T) {
	a := New(Dhatu)
	b := a
	b.Add(Pada)
	if a.Has(Pada) {
		t.Fatal("Set must copy by value, not alias")
	}
}
