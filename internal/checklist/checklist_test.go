package checklist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theawkwardchild/nmap-navigator/internal/classify"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

func TestDefaultItemsIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range DefaultItems() {
		assert.False(t, seen[item.ID], "duplicate id %q", item.ID)
		seen[item.ID] = true
	}
}

func TestDefaultItemsAreWellFormed(t *testing.T) {
	validCategories := map[string]bool{
		store.CategoryEnumeration:     true,
		store.CategoryUnauthenticated: true,
		store.CategoryAuthenticated:   true,
		store.CategoryExploitation:    true,
	}

	for _, item := range DefaultItems() {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Title, "item %q has no title", item.ID)
		assert.True(t, validCategories[item.Category], "item %q has category %q", item.ID, item.Category)
		assert.Positive(t, item.Order, "item %q has no order", item.ID)

		// Every service type is a canonical classifier output.
		assert.Equal(t, item.ServiceType, classify.Classify(item.ServiceType),
			"item %q has non-canonical service type %q", item.ID, item.ServiceType)
	}
}

func TestDefaultItemsParentReferencesResolve(t *testing.T) {
	byID := make(map[string]store.ChecklistItem)
	for _, item := range DefaultItems() {
		byID[item.ID] = item
	}

	for _, item := range DefaultItems() {
		if item.ParentID == "" {
			continue
		}
		parent, ok := byID[item.ParentID]
		assert.True(t, ok, "item %q references missing parent %q", item.ID, item.ParentID)
		assert.Equal(t, item.ServiceType, parent.ServiceType,
			"item %q and parent %q differ in service type", item.ID, item.ParentID)
	}
}

func TestDefaultItemsCoverCommonServiceTypes(t *testing.T) {
	covered := make(map[string]bool)
	for _, item := range DefaultItems() {
		covered[item.ServiceType] = true
	}

	for _, serviceType := range []string{
		"smb", "http", "ssh", "ftp", "dns", "ldap",
		"rdp", "mssql", "mysql", "smtp", "snmp", "winrm",
	} {
		assert.True(t, covered[serviceType], "no items for %q", serviceType)
	}
}

func TestDefaultItemsPlaceholders(t *testing.T) {
	// Commands that target a specific endpoint carry the IP placeholder so
	// the UI can substitute the selected service.
	for _, item := range DefaultItems() {
		if item.Command == "" {
			continue
		}
		if strings.Contains(item.Command, "{PORT}") {
			assert.Contains(t, item.Command, "{IP}",
				"item %q uses {PORT} without {IP}", item.ID)
		}
	}
}
