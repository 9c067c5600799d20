package vastapi

import "fmt"

// LoadState is the construction state of a function table.
type LoadState string

const (
	// StateEmpty means nothing has been allocated yet. It is the zero value,
	// so a table from new() starts here.
	StateEmpty LoadState = ""
	// StateAllocated means the table value exists but no library is open.
	StateAllocated LoadState = "allocated"
	// StateLibraryOpen means the driver library is open and no symbol has
	// been resolved yet.
	StateLibraryOpen LoadState = "library-open"
	// StateResolving means symbols are being bound in table order.
	StateResolving LoadState = "resolving"
	// StatePopulated means every required symbol is bound. The table is
	// read-only from here on.
	StatePopulated LoadState = "populated"
	// StateFailed means construction aborted. It always leads to StateFreed
	// before the load call returns.
	StateFailed LoadState = "failed"
	// StateFreed means the library has been released.
	StateFreed LoadState = "freed"
)

func (s LoadState) String() string {
	if s == StateEmpty {
		return "empty"
	}
	return string(s)
}

// Update moves a table from s to next, running f in between. A transition
// the load sequence does not allow is rejected before f runs. When f fails
// the table keeps its current state.
func (s *LoadState) Update(next LoadState, f func() error) error {
	type checkFunc func() error
	m := map[LoadState]checkFunc{
		StateAllocated:   s.toAllocated,
		StateLibraryOpen: s.toLibraryOpen,
		StateResolving:   s.toResolving,
		StatePopulated:   s.toPopulated,
		StateFailed:      s.toFailed,
		StateFreed:       s.toFreed,
	}

	check, ok := m[next]
	if !ok {
		return fmt.Errorf("invalid state: cannot move to %s", next)
	}
	if err := check(); err != nil {
		return err
	}

	if f != nil {
		if err := f(); err != nil {
			return err
		}
	}
	*s = next
	return nil
}

func (s *LoadState) toAllocated() error {
	if *s != StateEmpty {
		return fmt.Errorf("invalid state: table is already %s", *s)
	}
	return nil
}

func (s *LoadState) toLibraryOpen() error {
	if *s != StateAllocated {
		return fmt.Errorf("invalid state: cannot open library when %s", *s)
	}
	return nil
}

func (s *LoadState) toResolving() error {
	if *s != StateLibraryOpen && *s != StateResolving {
		return fmt.Errorf("invalid state: cannot resolve symbols when %s", *s)
	}
	return nil
}

func (s *LoadState) toPopulated() error {
	if *s != StateLibraryOpen && *s != StateResolving {
		return fmt.Errorf("invalid state: cannot populate when %s", *s)
	}
	return nil
}

func (s *LoadState) toFailed() error {
	switch *s {
	case StatePopulated, StateFreed:
		return fmt.Errorf("invalid state: cannot fail when %s", *s)
	}
	return nil
}

func (s *LoadState) toFreed() error {
	if *s == StateFreed {
		return fmt.Errorf("invalid state: table is already freed")
	}
	return nil
}
