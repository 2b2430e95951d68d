package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		expected    string
	}{
		{"exact match", "http", "http"},
		{"https maps to http", "https", "http"},
		{"case insensitive", "HTTPS", "http"},
		{"mixed case proxy", "Http-Proxy", "http"},
		{"microsoft-ds maps to smb", "microsoft-ds", "smb"},
		{"netbios maps to smb", "netbios-ssn", "smb"},
		{"kerberos-sec maps to kerberos", "kerberos-sec", "kerberos"},
		{"ms-wbt-server maps to rdp", "ms-wbt-server", "rdp"},
		{"ms-sql-s maps to mssql", "ms-sql-s", "mssql"},
		{"postgres maps to postgresql", "postgres", "postgresql"},
		{"wsman maps to winrm", "wsman", "winrm"},
		{"domain maps to dns", "domain", "dns"},
		{"substring match", "ssl/https", "http"},
		{"unknown passes through lowercased", "Obscure-Thing", "obscure-thing"},
		{"empty name passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.serviceName))
		})
	}
}

func TestClassifyOrderPrecedence(t *testing.T) {
	// "smb" is declared before "http", so a name containing both fragments
	// resolves to smb.
	assert.Equal(t, "smb", Classify("smb-over-http"))
}

func TestKnownTypes(t *testing.T) {
	types := KnownTypes()

	assert.NotEmpty(t, types)
	assert.Equal(t, "smb", types[0])
	assert.Contains(t, types, "http")
	assert.Contains(t, types, "winrm")

	// Every known type classifies to itself.
	for _, name := range types {
		assert.Equal(t, name, Classify(name))
	}
}
