package vastapi

import (
	"github.com/pion/logging"

	"github.com/vastai/go-vastapi/pkg/dl"
)

// Params stores loader parameters.
type Params struct {
	// LibraryName is handed to the platform loader as is, so the default
	// search path applies unless it contains a path separator.
	LibraryName string
	// Opener opens LibraryName. Tests substitute an in-memory library here.
	Opener dl.Opener
	// LoggerFactory creates the logger used for load diagnostics. nil keeps
	// the package logger.
	LoggerFactory logging.LoggerFactory
}

// NewParams returns the default loader parameters.
func NewParams() (Params, error) {
	return Params{
		LibraryName: LibraryName,
		Opener:      dl.DefaultOpener,
	}, nil
}

func (p *Params) libraryName() string {
	if p.LibraryName == "" {
		return LibraryName
	}
	return p.LibraryName
}

func (p *Params) opener() dl.Opener {
	if p.Opener == nil {
		return dl.DefaultOpener
	}
	return p.Opener
}

func (p *Params) logger() logging.LeveledLogger {
	if p.LoggerFactory == nil {
		return logger
	}
	return p.LoggerFactory.NewLogger("vastapi")
}
