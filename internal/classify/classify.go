// Package classify maps raw service names reported by a scan to canonical
// service types used to select checklist templates.
package classify

import "strings"

// serviceType pairs a canonical type with the scan-reported name fragments
// that identify it.
type serviceType struct {
	name    string
	aliases []string
}

// serviceTypes is evaluated top to bottom; the first type with a matching
// alias wins. The order is part of the classifier's contract, so keep it
// stable when adding entries.
var serviceTypes = []serviceType{
	{"smb", []string{"smb", "microsoft-ds", "netbios-ssn", "netbios"}},
	{"http", []string{"http", "https", "http-proxy", "http-alt"}},
	{"ssh", []string{"ssh"}},
	{"ftp", []string{"ftp", "ftp-data"}},
	{"dns", []string{"dns", "domain"}},
	{"ldap", []string{"ldap", "ldaps"}},
	{"kerberos", []string{"kerberos", "kerberos-sec"}},
	{"rdp", []string{"rdp", "ms-wbt-server"}},
	{"mysql", []string{"mysql"}},
	{"mssql", []string{"mssql", "ms-sql-s", "ms-sql-m"}},
	{"postgresql", []string{"postgresql", "postgres"}},
	{"vnc", []string{"vnc"}},
	{"telnet", []string{"telnet"}},
	{"smtp", []string{"smtp", "smtps"}},
	{"pop3", []string{"pop3", "pop3s"}},
	{"imap", []string{"imap", "imaps"}},
	{"snmp", []string{"snmp"}},
	{"nfs", []string{"nfs", "nfsd"}},
	{"rpc", []string{"rpc", "rpcbind", "msrpc"}},
	{"winrm", []string{"winrm", "wsman"}},
}

// Classify returns the canonical service type for a scan-reported service
// name. Matching is case-insensitive substring containment against each
// type's aliases, in declared order. When nothing matches, the lower-cased
// input is returned as-is; callers treat an unrecognized type as "no
// checklist available", not as an error.
func Classify(serviceName string) string {
	lower := strings.ToLower(serviceName)
	for _, st := range serviceTypes {
		for _, alias := range st.aliases {
			if strings.Contains(lower, alias) {
				return st.name
			}
		}
	}
	return lower
}

// KnownTypes returns the canonical service types in declared order.
func KnownTypes() []string {
	types := make([]string, len(serviceTypes))
	for i, st := range serviceTypes {
		types[i] = st.name
	}
	return types
}
