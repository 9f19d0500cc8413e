// Package modules lists the reporters compiled into the binary.
package modules

import (
	"github.com/user/scanreport/pkg/modules/domainexpiration"
	"github.com/user/scanreport/pkg/modules/nuclei"
	"github.com/user/scanreport/pkg/reporter"
)

// Builtin returns every built-in reporter. Order is the registration order.
func Builtin() []reporter.Reporter {
	return []reporter.Reporter{
		nuclei.Reporter{},
		domainexpiration.Reporter{},
	}
}

// Registry builds the registry of built-in reporters.
func Registry() (*reporter.Registry, error) {
	return reporter.New(Builtin()...)
}
