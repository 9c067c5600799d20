package vastapi

import (
	"github.com/google/uuid"
)

type table interface {
	base() *handle
	symbols() []Symbol
}

// LoadFunctions loads the device table from LibraryName into *functions.
// A table already held in *functions is freed first. On failure *functions
// is nil and nothing stays loaded.
func LoadFunctions(functions **Functions) error {
	p, err := NewParams()
	if err != nil {
		return err
	}
	return p.LoadFunctions(functions)
}

// FreeFunctions unloads *functions and sets it to nil. It does nothing when
// functions or *functions is nil.
func FreeFunctions(functions **Functions) {
	if functions == nil || *functions == nil {
		return
	}
	_ = (*functions).Close()
	*functions = nil
}

// LoadNoDevFunctions is LoadFunctions for the device-independent table.
func LoadNoDevFunctions(functions **NoDevFunctions) error {
	p, err := NewParams()
	if err != nil {
		return err
	}
	return p.LoadNoDevFunctions(functions)
}

// FreeNoDevFunctions is FreeFunctions for the device-independent table.
func FreeNoDevFunctions(functions **NoDevFunctions) {
	if functions == nil || *functions == nil {
		return
	}
	_ = (*functions).Close()
	*functions = nil
}

// LoadFunctions loads the device table using p.
func (p *Params) LoadFunctions(functions **Functions) error {
	if functions == nil {
		return errNilTable
	}
	FreeFunctions(functions)

	f := new(Functions)
	if err := p.load(f); err != nil {
		return err
	}
	*functions = f
	return nil
}

// LoadNoDevFunctions loads the device-independent table using p.
func (p *Params) LoadNoDevFunctions(functions **NoDevFunctions) error {
	if functions == nil {
		return errNilTable
	}
	FreeNoDevFunctions(functions)

	f := new(NoDevFunctions)
	if err := p.load(f); err != nil {
		return err
	}
	*functions = f
	return nil
}

// load opens the library and binds every symbol of t in order. Any required
// symbol that cannot be bound releases the library before returning.
func (p *Params) load(t table) error {
	h := t.base()
	log := p.logger()
	name := p.libraryName()

	// Nothing is acquired yet. A table already in use is left untouched.
	err := h.state.Update(StateAllocated, func() error {
		h.id = uuid.NewString()
		h.log = log
		return nil
	})
	if err != nil {
		log.Errorf("Cannot load %s: %v", name, err)
		return &LoadError{Library: name, Err: err}
	}

	err = h.state.Update(StateLibraryOpen, func() error {
		lib, err := p.opener().Open(name)
		if err != nil {
			return err
		}
		h.lib = lib
		return nil
	})
	if err != nil {
		log.Errorf("Cannot load %s: %v", name, err)
		h.fail()
		return &LoadError{Library: name, Err: err}
	}
	log.Debugf("Loaded lib: %s (table %s)", name, h.id)

	for _, s := range t.symbols() {
		err := h.state.Update(StateResolving, func() error {
			return s.bind(h.lib)
		})
		switch {
		case err == nil:
			log.Tracef("Loaded sym: %s", s.Name)
		case s.Optional:
			log.Debugf("Cannot load optional %s: %v", s.Name, err)
		default:
			log.Errorf("Cannot load %s: %v", s.Name, err)
			h.fail()
			return &LoadError{Library: name, Symbol: s.Name, Err: err}
		}
	}

	if err := h.state.Update(StatePopulated, nil); err != nil {
		h.fail()
		return &LoadError{Library: name, Err: err}
	}
	return nil
}
