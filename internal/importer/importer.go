// Package importer orchestrates scan report ingestion: parse, then replace
// the stored inventory with the parsed snapshot.
package importer

import (
	"fmt"

	"github.com/theawkwardchild/nmap-navigator/internal/logging"
	"github.com/theawkwardchild/nmap-navigator/internal/metrics"
	"github.com/theawkwardchild/nmap-navigator/internal/nmap"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

// Importer ties the parser to the store and records import outcomes.
type Importer struct {
	store   *store.Store
	logger  *logging.Logger
	metrics *metrics.Registry
}

// Result summarizes a completed import.
type Result struct {
	Hosts    []store.Host    `json:"hosts"`
	Services []store.Service `json:"services"`
	Message  string          `json:"message"`
}

// New creates an Importer. The metrics registry may be nil, in which case
// import counters are not recorded.
func New(st *store.Store, logger *logging.Logger, reg *metrics.Registry) *Importer {
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Importer{
		store:   st,
		logger:  logger,
		metrics: reg,
	}
}

// Import parses raw scan XML and replaces the current host and service
// inventory with its contents. Parse failures leave the store untouched.
func (i *Importer) Import(data []byte) (*Result, error) {
	parsed, err := nmap.Parse(data)
	if err != nil {
		i.logger.ErrorImport("scan import failed", err)
		if i.metrics != nil {
			i.metrics.RecordImportFailure()
		}
		return nil, err
	}

	hosts, services := i.store.ReplaceScanData(parsed.Hosts, parsed.ServicesByIP)

	i.logger.InfoImport("scan imported",
		"hosts", len(hosts),
		"services", len(services),
	)
	if i.metrics != nil {
		i.metrics.RecordImportSuccess(len(hosts), len(services))
		i.metrics.SetInventorySize(len(hosts), len(services))
	}

	return &Result{
		Hosts:    hosts,
		Services: services,
		Message:  fmt.Sprintf("Imported %d hosts and %d services", len(hosts), len(services)),
	}, nil
}
