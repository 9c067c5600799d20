package vastapi

import (
	"errors"
	"testing"
)

var noop = func() error { return nil }

func TestUpdate(t *testing.T) {
	s := StateEmpty
	for _, next := range []LoadState{StateAllocated, StateLibraryOpen, StateResolving, StateResolving, StatePopulated, StateFreed} {
		if err := s.Update(next, noop); err != nil {
			t.Fatalf("%s: %v", next, err)
		}
		if s != next {
			t.Fatalf("expected %s, got %s", next, s)
		}
	}
}

func TestUpdateInvalid(t *testing.T) {
	cases := []struct {
		from, to LoadState
	}{
		{StateEmpty, StateLibraryOpen},
		{StateAllocated, StateResolving},
		{StateAllocated, StateAllocated},
		{StatePopulated, StateResolving},
		{StatePopulated, StateFailed},
		{StateFreed, StateFreed},
		{StateFreed, StateFailed},
		{StateEmpty, StateEmpty},
	}
	for _, c := range cases {
		s := c.from
		if err := s.Update(c.to, noop); err == nil {
			t.Errorf("%s -> %s must fail", c.from, c.to)
		}
		if s != c.from {
			t.Errorf("state changed to %s on invalid transition", s)
		}
	}
}

func TestUpdateFuncError(t *testing.T) {
	s := StateAllocated
	err := s.Update(StateLibraryOpen, func() error { return errors.New("dlopen failed") })
	if err == nil {
		t.Fatal("expected error")
	}
	if s != StateAllocated {
		t.Fatalf("expected %s, got %s", StateAllocated, s)
	}

	if err := s.Update(StateFailed, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(StateFreed, nil); err != nil {
		t.Fatal(err)
	}
}

func TestZeroValueIsEmpty(t *testing.T) {
	var s LoadState
	if s != StateEmpty {
		t.Fatalf("expected %s, got %q", StateEmpty, string(s))
	}
	if s.String() != "empty" {
		t.Fatalf("expected empty, got %s", s)
	}
	if err := s.Update(StateAllocated, nil); err != nil {
		t.Fatal(err)
	}

	if st := new(Functions).State(); st != StateEmpty {
		t.Fatalf("new table starts in %s", st)
	}
	if st := new(NoDevFunctions).State(); st != StateEmpty {
		t.Fatalf("new table starts in %s", st)
	}
}
