package vastapi

import "fmt"

// SymbolReport is the lookup result for one table entry.
type SymbolReport struct {
	Name     string
	Optional bool
	Found    bool
	Err      error
}

// Report describes which entry points of a variant a library exports.
type Report struct {
	Library string
	Variant Variant
	Symbols []SymbolReport
}

// Missing returns the required symbols that were not found, in table order.
func (r *Report) Missing() []string {
	var missing []string
	for _, s := range r.Symbols {
		if !s.Found && !s.Optional {
			missing = append(missing, s.Name)
		}
	}
	return missing
}

// Complete reports whether a load of the same variant would succeed.
func (r *Report) Complete() bool {
	return len(r.Missing()) == 0
}

// Probe opens the library, looks up every symbol of v without binding it and
// closes the library again. Unlike a load it does not stop at the first
// missing symbol.
func (p *Params) Probe(v Variant) (*Report, error) {
	symbols := v.Symbols()
	if symbols == nil {
		return nil, fmt.Errorf("vastapi: unknown table variant %s", v)
	}

	name := p.libraryName()
	log := p.logger()
	lib, err := p.opener().Open(name)
	if err != nil {
		return nil, &LoadError{Library: name, Err: err}
	}
	defer func() {
		if err := lib.Close(); err != nil {
			log.Warnf("closing %s after probe: %v", name, err)
		}
	}()

	r := &Report{
		Library: name,
		Variant: v,
		Symbols: make([]SymbolReport, 0, len(symbols)),
	}
	for _, s := range symbols {
		_, err := lib.Lookup(s.Name)
		r.Symbols = append(r.Symbols, SymbolReport{
			Name:     s.Name,
			Optional: s.Optional,
			Found:    err == nil,
			Err:      err,
		})
	}
	log.Debugf("probed %s for %s table: %d/%d symbols missing", name, v, len(r.Missing()), len(symbols))
	return r, nil
}
