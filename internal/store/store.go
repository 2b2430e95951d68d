package store

import (
	"sync"

	"github.com/google/uuid"
)

// stateKey identifies a ChecklistState row for upsert purposes.
type stateKey struct {
	hostID, serviceID, itemID string
}

// testKey identifies a CredentialTest row for upsert purposes.
type testKey struct {
	credentialID, serviceID string
}

// Store is the authoritative in-memory holder of all entities. Every read
// and write goes through it. A single RWMutex guards all collections so that
// composite-key upserts and cascading deletes are atomic with respect to
// concurrent requests.
type Store struct {
	mu sync.RWMutex

	hosts     map[string]Host
	hostOrder []string

	services     map[string]Service
	serviceOrder []string

	checklistItems []ChecklistItem

	checklistStates map[stateKey]ChecklistState
	stateOrder      []stateKey

	credentials     map[string]Credential
	credentialOrder []string

	credentialTests map[testKey]CredentialTest
	testOrder       []testKey

	usernames     map[string]Username
	usernameOrder []string

	passwords     map[string]DiscoveredPassword
	passwordOrder []string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		hosts:           make(map[string]Host),
		services:        make(map[string]Service),
		checklistStates: make(map[stateKey]ChecklistState),
		credentials:     make(map[string]Credential),
		credentialTests: make(map[testKey]CredentialTest),
		usernames:       make(map[string]Username),
		passwords:       make(map[string]DiscoveredPassword),
	}
}

func newID() string {
	return uuid.NewString()
}

// removeFromOrder deletes the first occurrence of id from an order slice.
func removeFromOrder(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}

// Hosts

// GetAllHosts returns all hosts in creation order.
func (s *Store) GetAllHosts() []Host {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hosts := make([]Host, 0, len(s.hostOrder))
	for _, id := range s.hostOrder {
		hosts = append(hosts, s.hosts[id])
	}
	return hosts
}

// GetHost returns the host with the given id, if it exists.
func (s *Store) GetHost(id string) (Host, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	host, ok := s.hosts[id]
	return host, ok
}

// CreateHost persists a new host with a fresh id.
func (s *Store) CreateHost(input HostInput) Host {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createHostLocked(input)
}

func (s *Store) createHostLocked(input HostInput) Host {
	host := Host{
		ID:       newID(),
		IP:       input.IP,
		Hostname: input.Hostname,
		OS:       input.OS,
		Status:   input.Status,
	}
	s.hosts[host.ID] = host
	s.hostOrder = append(s.hostOrder, host.ID)
	return host
}

// DeleteHost removes a host and cascades: its services are removed, along
// with the checklist states and credential tests referencing those services.
func (s *Store) DeleteHost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.hosts, id)
	s.hostOrder = removeFromOrder(s.hostOrder, id)

	for serviceID, service := range s.services {
		if service.HostID == id {
			s.deleteServiceLocked(serviceID)
		}
	}

	// States keyed by the host directly, regardless of service
	for key := range s.checklistStates {
		if key.hostID == id {
			s.deleteStateLocked(key)
		}
	}
}

// ClearHosts removes every host. Used only during scan import.
func (s *Store) ClearHosts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hosts = make(map[string]Host)
	s.hostOrder = nil
}

// Services

// GetAllServices returns all services in creation order.
func (s *Store) GetAllServices() []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]Service, 0, len(s.serviceOrder))
	for _, id := range s.serviceOrder {
		services = append(services, s.services[id])
	}
	return services
}

// GetServicesByHost returns the services owned by a host, in creation order.
func (s *Store) GetServicesByHost(hostID string) []Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]Service, 0)
	for _, id := range s.serviceOrder {
		if service := s.services[id]; service.HostID == hostID {
			services = append(services, service)
		}
	}
	return services
}

// GetService returns the service with the given id, if it exists.
func (s *Store) GetService(id string) (Service, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	service, ok := s.services[id]
	return service, ok
}

// CreateService persists a new service with a fresh id.
func (s *Store) CreateService(input ServiceInput) Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createServiceLocked(input)
}

func (s *Store) createServiceLocked(input ServiceInput) Service {
	service := Service{
		ID:       newID(),
		HostID:   input.HostID,
		Port:     input.Port,
		Protocol: input.Protocol,
		Name:     input.Name,
		Product:  input.Product,
		Version:  input.Version,
		State:    input.State,
	}
	s.services[service.ID] = service
	s.serviceOrder = append(s.serviceOrder, service.ID)
	return service
}

// DeleteService removes a service and the checklist states and credential
// tests referencing it.
func (s *Store) DeleteService(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deleteServiceLocked(id)
}

func (s *Store) deleteServiceLocked(id string) {
	delete(s.services, id)
	s.serviceOrder = removeFromOrder(s.serviceOrder, id)

	for key := range s.checklistStates {
		if key.serviceID == id {
			s.deleteStateLocked(key)
		}
	}
	for key := range s.credentialTests {
		if key.serviceID == id {
			s.deleteTestLocked(key)
		}
	}
}

// ClearServices removes every service. Used only during scan import.
func (s *Store) ClearServices() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.services = make(map[string]Service)
	s.serviceOrder = nil
}

// ReplaceScanData atomically replaces the host/service inventory with the
// result of a scan import. Existing hosts and services are discarded, new
// hosts are created in the given order, and each host's services are created
// in their listed order with the hostId foreign key wired to the fresh host.
// The whole replacement happens under one lock acquisition so no reader can
// observe a half-imported inventory.
func (s *Store) ReplaceScanData(hosts []HostInput, servicesByIP map[string][]ServiceInput) ([]Host, []Service) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hosts = make(map[string]Host)
	s.hostOrder = nil
	s.services = make(map[string]Service)
	s.serviceOrder = nil

	createdHosts := make([]Host, 0, len(hosts))
	createdServices := make([]Service, 0)

	for _, input := range hosts {
		host := s.createHostLocked(input)
		createdHosts = append(createdHosts, host)

		for _, serviceInput := range servicesByIP[host.IP] {
			serviceInput.HostID = host.ID
			createdServices = append(createdServices, s.createServiceLocked(serviceInput))
		}
	}

	return createdHosts, createdServices
}

// Counts returns the current number of hosts and services.
func (s *Store) Counts() (hosts, services int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.hosts), len(s.services)
}

// Checklist items

// GetAllChecklistItems returns the full template collection.
func (s *Store) GetAllChecklistItems() []ChecklistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ChecklistItem, len(s.checklistItems))
	copy(items, s.checklistItems)
	return items
}

// GetChecklistItemsByServiceType returns the templates whose serviceType
// matches exactly.
func (s *Store) GetChecklistItemsByServiceType(serviceType string) []ChecklistItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ChecklistItem, 0)
	for _, item := range s.checklistItems {
		if item.ServiceType == serviceType {
			items = append(items, item)
		}
	}
	return items
}

// SetChecklistItems replaces the entire template collection. Called once at
// process start with the static reference data.
func (s *Store) SetChecklistItems(items []ChecklistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checklistItems = make([]ChecklistItem, len(items))
	copy(s.checklistItems, items)
}

// Checklist states

// GetChecklistStates returns the progress rows for a host/service pair.
func (s *Store) GetChecklistStates(hostID, serviceID string) []ChecklistState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]ChecklistState, 0)
	for _, key := range s.stateOrder {
		if key.hostID == hostID && key.serviceID == serviceID {
			states = append(states, s.checklistStates[key])
		}
	}
	return states
}

// SetChecklistState upserts a progress row keyed by
// (hostId, serviceId, checklistItemId). An existing row keeps its id and has
// the new completed/notes values merged in; otherwise a new row is created.
func (s *Store) SetChecklistState(input ChecklistStateInput) ChecklistState {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := stateKey{hostID: input.HostID, serviceID: input.ServiceID, itemID: input.ChecklistItemID}
	if existing, ok := s.checklistStates[key]; ok {
		existing.Completed = input.Completed
		existing.Notes = input.Notes
		s.checklistStates[key] = existing
		return existing
	}

	state := ChecklistState{
		ID:              newID(),
		HostID:          input.HostID,
		ServiceID:       input.ServiceID,
		ChecklistItemID: input.ChecklistItemID,
		Completed:       input.Completed,
		Notes:           input.Notes,
	}
	s.checklistStates[key] = state
	s.stateOrder = append(s.stateOrder, key)
	return state
}

func (s *Store) deleteStateLocked(key stateKey) {
	delete(s.checklistStates, key)
	for i, k := range s.stateOrder {
		if k == key {
			s.stateOrder = append(s.stateOrder[:i], s.stateOrder[i+1:]...)
			break
		}
	}
}

// Credentials

// GetAllCredentials returns all credentials in creation order.
func (s *Store) GetAllCredentials() []Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()

	credentials := make([]Credential, 0, len(s.credentialOrder))
	for _, id := range s.credentialOrder {
		credentials = append(credentials, s.credentials[id])
	}
	return credentials
}

// GetCredential returns the credential with the given id, if it exists.
func (s *Store) GetCredential(id string) (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	credential, ok := s.credentials[id]
	return credential, ok
}

// CreateCredential persists a new credential with a fresh id.
func (s *Store) CreateCredential(input CredentialInput) Credential {
	s.mu.Lock()
	defer s.mu.Unlock()

	credential := Credential{
		ID:       newID(),
		Username: input.Username,
		Password: input.Password,
		Hash:     input.Hash,
		Type:     input.Type,
		Source:   input.Source,
	}
	s.credentials[credential.ID] = credential
	s.credentialOrder = append(s.credentialOrder, credential.ID)
	return credential
}

// DeleteCredential removes a credential and every credential test
// referencing it.
func (s *Store) DeleteCredential(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.credentials, id)
	s.credentialOrder = removeFromOrder(s.credentialOrder, id)

	for key := range s.credentialTests {
		if key.credentialID == id {
			s.deleteTestLocked(key)
		}
	}
}

// Credential tests

// GetAllCredentialTests returns all credential tests in creation order.
func (s *Store) GetAllCredentialTests() []CredentialTest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tests := make([]CredentialTest, 0, len(s.testOrder))
	for _, key := range s.testOrder {
		tests = append(tests, s.credentialTests[key])
	}
	return tests
}

// SetCredentialTest upserts a test result keyed by
// (credentialId, serviceId). An existing row keeps its id and takes the new
// status and hostId; otherwise a new row is created.
func (s *Store) SetCredentialTest(input CredentialTestInput) CredentialTest {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := testKey{credentialID: input.CredentialID, serviceID: input.ServiceID}
	if existing, ok := s.credentialTests[key]; ok {
		existing.HostID = input.HostID
		existing.Status = input.Status
		s.credentialTests[key] = existing
		return existing
	}

	test := CredentialTest{
		ID:           newID(),
		CredentialID: input.CredentialID,
		ServiceID:    input.ServiceID,
		HostID:       input.HostID,
		Status:       input.Status,
	}
	s.credentialTests[key] = test
	s.testOrder = append(s.testOrder, key)
	return test
}

func (s *Store) deleteTestLocked(key testKey) {
	delete(s.credentialTests, key)
	for i, k := range s.testOrder {
		if k == key {
			s.testOrder = append(s.testOrder[:i], s.testOrder[i+1:]...)
			break
		}
	}
}

// Usernames

// GetAllUsernames returns all discovered usernames in creation order.
func (s *Store) GetAllUsernames() []Username {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usernames := make([]Username, 0, len(s.usernameOrder))
	for _, id := range s.usernameOrder {
		usernames = append(usernames, s.usernames[id])
	}
	return usernames
}

// GetUsername returns the username entry with the given id, if it exists.
func (s *Store) GetUsername(id string) (Username, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.usernames[id]
	return entry, ok
}

// CreateUsername persists a new username with a fresh id.
func (s *Store) CreateUsername(username, source string) Username {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Username{ID: newID(), Username: username, Source: source}
	s.usernames[entry.ID] = entry
	s.usernameOrder = append(s.usernameOrder, entry.ID)
	return entry
}

// DeleteUsername removes a username by id.
func (s *Store) DeleteUsername(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.usernames, id)
	s.usernameOrder = removeFromOrder(s.usernameOrder, id)
}

// Passwords

// GetAllPasswords returns all discovered passwords in creation order.
func (s *Store) GetAllPasswords() []DiscoveredPassword {
	s.mu.RLock()
	defer s.mu.RUnlock()

	passwords := make([]DiscoveredPassword, 0, len(s.passwordOrder))
	for _, id := range s.passwordOrder {
		passwords = append(passwords, s.passwords[id])
	}
	return passwords
}

// GetPassword returns the discovered password with the given id, if it
// exists.
func (s *Store) GetPassword(id string) (DiscoveredPassword, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.passwords[id]
	return entry, ok
}

// CreatePassword persists a new discovered password with a fresh id.
func (s *Store) CreatePassword(password, source string) DiscoveredPassword {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := DiscoveredPassword{ID: newID(), Password: password, Source: source}
	s.passwords[entry.ID] = entry
	s.passwordOrder = append(s.passwordOrder, entry.ID)
	return entry
}

// DeletePassword removes a discovered password by id.
func (s *Store) DeletePassword(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.passwords, id)
	s.passwordOrder = removeFromOrder(s.passwordOrder, id)
}
