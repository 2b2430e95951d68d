// Package nmap parses nmap XML scan reports into normalized host and service
// drafts ready for persistence. The decoder handles the variable cardinality
// of the source format: most elements may be absent, appear once, or repeat,
// and slice-typed fields normalize all three shapes uniformly.
package nmap

import (
	"encoding/xml"
	"strings"

	"github.com/theawkwardchild/nmap-navigator/internal/errors"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

// Internal decoding structs matching the nmap XML schema.
type runDoc struct {
	XMLName xml.Name
	Hosts   []hostElem `xml:"host"`
}

type hostElem struct {
	Status    statusElem    `xml:"status"`
	Addresses []addressElem `xml:"address"`
	Hostnames []hostname    `xml:"hostnames>hostname"`
	Ports     []portElem    `xml:"ports>port"`
	OSMatches []osMatch     `xml:"os>osmatch"`
}

type statusElem struct {
	State string `xml:"state,attr"`
}

type addressElem struct {
	Addr     string `xml:"addr,attr"`
	AddrType string `xml:"addrtype,attr"`
}

type hostname struct {
	Name string `xml:"name,attr"`
}

type osMatch struct {
	Name string `xml:"name,attr"`
}

type portElem struct {
	Protocol string      `xml:"protocol,attr"`
	PortID   int         `xml:"portid,attr"`
	State    stateElem   `xml:"state"`
	Service  serviceElem `xml:"service"`
}

type stateElem struct {
	State string `xml:"state,attr"`
}

type serviceElem struct {
	Name    string `xml:"name,attr"`
	Product string `xml:"product,attr"`
	Version string `xml:"version,attr"`
}

// Result holds the normalized output of a parsed scan report. Hosts appear
// in document order. Services are grouped by the owning host's IP address,
// since no persisted host id exists at parse time.
type Result struct {
	Hosts        []store.HostInput
	ServicesByIP map[string][]store.ServiceInput
}

// Parse converts raw nmap XML into host and service drafts. A document whose
// root element is not <nmaprun> is rejected with a format error carrying a
// descriptive message; malformed XML surfaces the decoder error wrapped in
// the same error family. Hosts without any address record are skipped.
func Parse(data []byte) (*Result, error) {
	var doc runDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapFormatError("failed to parse nmap XML", err)
	}

	if doc.XMLName.Local != "nmaprun" {
		return nil, errors.NewFormatError("invalid nmap XML format: missing nmaprun element")
	}

	result := &Result{
		Hosts:        make([]store.HostInput, 0, len(doc.Hosts)),
		ServicesByIP: make(map[string][]store.ServiceInput),
	}

	for _, h := range doc.Hosts {
		ip := hostAddress(h.Addresses)
		if ip == "" {
			// Lenient-skip policy: a host record without an address
			// cannot be keyed, so it is dropped silently.
			continue
		}

		result.Hosts = append(result.Hosts, store.HostInput{
			IP:       ip,
			Hostname: firstHostname(h.Hostnames),
			OS:       firstOSMatch(h.OSMatches),
			Status:   hostStatus(h.Status),
		})

		if services := hostServices(h.Ports); len(services) > 0 {
			result.ServicesByIP[ip] = services
		}
	}

	return result, nil
}

// hostAddress picks the host's IP: the ipv4 record when address families are
// mixed, otherwise the first address present.
func hostAddress(addresses []addressElem) string {
	for _, a := range addresses {
		if strings.EqualFold(a.AddrType, "ipv4") {
			return a.Addr
		}
	}
	if len(addresses) > 0 {
		return addresses[0].Addr
	}
	return ""
}

func firstHostname(names []hostname) string {
	if len(names) == 0 {
		return ""
	}
	return names[0].Name
}

func firstOSMatch(matches []osMatch) string {
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Name
}

func hostStatus(status statusElem) string {
	if status.State == store.HostStatusUp {
		return store.HostStatusUp
	}
	return store.HostStatusDown
}

func hostServices(ports []portElem) []store.ServiceInput {
	services := make([]store.ServiceInput, 0, len(ports))
	for _, p := range ports {
		state := p.State.State
		if state == "" {
			state = store.ServiceStateUnknown
		}
		name := p.Service.Name
		if name == "" {
			name = "unknown"
		}

		services = append(services, store.ServiceInput{
			Port:     p.PortID,
			Protocol: p.Protocol,
			Name:     name,
			Product:  p.Service.Product,
			Version:  p.Service.Version,
			State:    state,
		})
	}
	return services
}
