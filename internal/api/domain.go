package api

import (
	"github.com/JaimeStill/redline/internal/analyses"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Analyses analyses.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	analysesSystem := analyses.New(
		runtime.Generator,
		runtime.Logger,
		runtime.Workers,
	)

	return &Domain{
		Analyses: analysesSystem,
	}
}
