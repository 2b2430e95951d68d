// Package store implements the in-memory domain repository for
// nmap-navigator. It owns every entity collection, assigns identifiers on
// creation, and enforces referential cleanup across collections.
package store

// Host status values.
const (
	HostStatusUp      = "up"
	HostStatusDown    = "down"
	HostStatusUnknown = "unknown"
)

// Service state values.
const (
	ServiceStateOpen     = "open"
	ServiceStateClosed   = "closed"
	ServiceStateFiltered = "filtered"
	ServiceStateUnknown  = "unknown"
)

// Checklist item categories.
const (
	CategoryEnumeration     = "enumeration"
	CategoryUnauthenticated = "unauthenticated"
	CategoryAuthenticated   = "authenticated"
	CategoryExploitation    = "exploitation"
)

// Credential types.
const (
	CredentialTypePassword = "password"
	CredentialTypeHash     = "hash"
	CredentialTypeKey      = "key"
)

// Credential test statuses.
const (
	TestStatusUntested = "untested"
	TestStatusValid    = "valid"
	TestStatusInvalid  = "invalid"
)

// Host represents a scanned network endpoint.
type Host struct {
	ID       string `json:"id"`
	IP       string `json:"ip"`
	Hostname string `json:"hostname,omitempty"`
	OS       string `json:"os,omitempty"`
	Status   string `json:"status"`
}

// HostInput holds the fields of a Host prior to identity assignment.
type HostInput struct {
	IP       string
	Hostname string
	OS       string
	Status   string
}

// Service represents a discovered network service owned by exactly one Host.
type Service struct {
	ID       string `json:"id"`
	HostID   string `json:"hostId"`
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
	Name     string `json:"name"`
	Product  string `json:"product,omitempty"`
	Version  string `json:"version,omitempty"`
	State    string `json:"state"`
}

// ServiceInput holds the fields of a Service prior to identity assignment.
type ServiceInput struct {
	HostID   string
	Port     int
	Protocol string
	Name     string
	Product  string
	Version  string
	State    string
}

// ChecklistItem is a reusable task template associated with a canonical
// service type. The collection is seeded once at startup and is read-only
// afterwards.
type ChecklistItem struct {
	ID          string   `json:"id"`
	ServiceType string   `json:"serviceType"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Command     string   `json:"command,omitempty"`
	Links       []string `json:"links,omitempty"`
	Order       int      `json:"order"`
	ParentID    string   `json:"parentId,omitempty"`
}

// ChecklistState tracks per-host-per-service completion of a checklist item.
// At most one row exists per (hostId, serviceId, checklistItemId) triple.
type ChecklistState struct {
	ID              string `json:"id"`
	HostID          string `json:"hostId"`
	ServiceID       string `json:"serviceId"`
	ChecklistItemID string `json:"checklistItemId"`
	Completed       bool   `json:"completed"`
	Notes           string `json:"notes,omitempty"`
}

// ChecklistStateInput holds the upsert fields for a ChecklistState.
type ChecklistStateInput struct {
	HostID          string
	ServiceID       string
	ChecklistItemID string
	Completed       bool
	Notes           string
}

// Credential is a globally scoped username+secret pair.
type Credential struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Hash     string `json:"hash,omitempty"`
	Type     string `json:"type"`
	Source   string `json:"source,omitempty"`
}

// CredentialInput holds the fields of a Credential prior to identity
// assignment.
type CredentialInput struct {
	Username string
	Password string
	Hash     string
	Type     string
	Source   string
}

// CredentialTest records the validity of a credential against a specific
// service. At most one row exists per (credentialId, serviceId) pair; hostId
// is denormalized for convenience.
type CredentialTest struct {
	ID           string `json:"id"`
	CredentialID string `json:"credentialId"`
	ServiceID    string `json:"serviceId"`
	HostID       string `json:"hostId"`
	Status       string `json:"status"`
}

// CredentialTestInput holds the upsert fields for a CredentialTest.
type CredentialTestInput struct {
	CredentialID string
	ServiceID    string
	HostID       string
	Status       string
}

// Username is a discovered account name with a free-text source annotation.
type Username struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Source   string `json:"source,omitempty"`
}

// DiscoveredPassword is a password found during enumeration.
type DiscoveredPassword struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Source   string `json:"source,omitempty"`
}
