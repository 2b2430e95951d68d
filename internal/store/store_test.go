package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHost(s *Store, ip string) Host {
	return s.CreateHost(HostInput{IP: ip, Status: HostStatusUp})
}

func newTestService(s *Store, hostID string, port int, name string) Service {
	return s.CreateService(ServiceInput{
		HostID:   hostID,
		Port:     port,
		Protocol: "tcp",
		Name:     name,
		State:    ServiceStateOpen,
	})
}

func TestCreateAndGetHost(t *testing.T) {
	s := New()

	host := s.CreateHost(HostInput{
		IP:       "10.0.0.1",
		Hostname: "web01",
		OS:       "Linux 5.15",
		Status:   HostStatusUp,
	})

	assert.NotEmpty(t, host.ID)
	assert.Equal(t, "10.0.0.1", host.IP)

	got, ok := s.GetHost(host.ID)
	require.True(t, ok)
	assert.Equal(t, host, got)

	_, ok = s.GetHost("missing")
	assert.False(t, ok)
}

func TestGetAllHostsPreservesCreationOrder(t *testing.T) {
	s := New()

	ips := []string{"10.0.0.3", "10.0.0.1", "10.0.0.2"}
	for _, ip := range ips {
		newTestHost(s, ip)
	}

	hosts := s.GetAllHosts()
	require.Len(t, hosts, 3)
	for i, ip := range ips {
		assert.Equal(t, ip, hosts[i].IP)
	}
}

func TestDeleteHostCascades(t *testing.T) {
	s := New()

	host := newTestHost(s, "10.0.0.1")
	other := newTestHost(s, "10.0.0.2")
	svc := newTestService(s, host.ID, 445, "microsoft-ds")
	otherSvc := newTestService(s, other.ID, 22, "ssh")

	cred := s.CreateCredential(CredentialInput{Username: "admin", Password: "pw", Type: CredentialTypePassword})
	s.SetChecklistState(ChecklistStateInput{
		HostID: host.ID, ServiceID: svc.ID, ChecklistItemID: "smb-enum-shares", Completed: true,
	})
	s.SetCredentialTest(CredentialTestInput{
		CredentialID: cred.ID, ServiceID: svc.ID, HostID: host.ID, Status: TestStatusValid,
	})

	s.DeleteHost(host.ID)

	_, ok := s.GetHost(host.ID)
	assert.False(t, ok)
	_, ok = s.GetService(svc.ID)
	assert.False(t, ok)
	assert.Empty(t, s.GetChecklistStates(host.ID, svc.ID))
	assert.Empty(t, s.GetAllCredentialTests())

	// Unrelated entities survive.
	_, ok = s.GetHost(other.ID)
	assert.True(t, ok)
	_, ok = s.GetService(otherSvc.ID)
	assert.True(t, ok)
	_, ok = s.GetCredential(cred.ID)
	assert.True(t, ok)
}

func TestDeleteServiceCascades(t *testing.T) {
	s := New()

	host := newTestHost(s, "10.0.0.1")
	svc := newTestService(s, host.ID, 80, "http")
	keep := newTestService(s, host.ID, 443, "https")

	cred := s.CreateCredential(CredentialInput{Username: "root", Type: CredentialTypeHash, Hash: "aad3b435"})
	s.SetChecklistState(ChecklistStateInput{HostID: host.ID, ServiceID: svc.ID, ChecklistItemID: "http-enum-dirs"})
	s.SetChecklistState(ChecklistStateInput{HostID: host.ID, ServiceID: keep.ID, ChecklistItemID: "http-enum-dirs"})
	s.SetCredentialTest(CredentialTestInput{CredentialID: cred.ID, ServiceID: svc.ID, HostID: host.ID, Status: TestStatusInvalid})

	s.DeleteService(svc.ID)

	_, ok := s.GetService(svc.ID)
	assert.False(t, ok)
	assert.Empty(t, s.GetChecklistStates(host.ID, svc.ID))
	assert.Empty(t, s.GetAllCredentialTests())

	// The sibling service and its progress survive, as does the host.
	_, ok = s.GetService(keep.ID)
	assert.True(t, ok)
	assert.Len(t, s.GetChecklistStates(host.ID, keep.ID), 1)
	_, ok = s.GetHost(host.ID)
	assert.True(t, ok)
}

func TestGetServicesByHost(t *testing.T) {
	s := New()

	a := newTestHost(s, "10.0.0.1")
	b := newTestHost(s, "10.0.0.2")
	newTestService(s, a.ID, 22, "ssh")
	newTestService(s, b.ID, 80, "http")
	newTestService(s, a.ID, 445, "microsoft-ds")

	services := s.GetServicesByHost(a.ID)
	require.Len(t, services, 2)
	assert.Equal(t, 22, services[0].Port)
	assert.Equal(t, 445, services[1].Port)

	assert.Empty(t, s.GetServicesByHost("missing"))
}

func TestReplaceScanData(t *testing.T) {
	s := New()

	// Pre-existing inventory that the import must discard.
	old := newTestHost(s, "192.168.1.1")
	newTestService(s, old.ID, 21, "ftp")

	hosts, services := s.ReplaceScanData(
		[]HostInput{
			{IP: "10.0.0.5", Hostname: "dc01", Status: HostStatusUp},
			{IP: "10.0.0.6", Status: HostStatusDown},
		},
		map[string][]ServiceInput{
			"10.0.0.5": {
				{Port: 445, Protocol: "tcp", Name: "microsoft-ds", State: ServiceStateOpen},
				{Port: 88, Protocol: "tcp", Name: "kerberos-sec", State: ServiceStateOpen},
			},
		},
	)

	require.Len(t, hosts, 2)
	require.Len(t, services, 2)

	// Every service points at the freshly created host.
	assert.Equal(t, hosts[0].ID, services[0].HostID)
	assert.Equal(t, hosts[0].ID, services[1].HostID)

	// Old inventory is gone.
	_, ok := s.GetHost(old.ID)
	assert.False(t, ok)
	assert.Len(t, s.GetAllHosts(), 2)
	assert.Len(t, s.GetAllServices(), 2)

	hostCount, serviceCount := s.Counts()
	assert.Equal(t, 2, hostCount)
	assert.Equal(t, 2, serviceCount)
}

func TestChecklistItems(t *testing.T) {
	s := New()

	items := []ChecklistItem{
		{ID: "smb-enum-shares", ServiceType: "smb", Category: CategoryEnumeration, Title: "Enumerate shares", Order: 1},
		{ID: "http-enum-dirs", ServiceType: "http", Category: CategoryEnumeration, Title: "Brute-force dirs", Order: 1},
	}
	s.SetChecklistItems(items)

	assert.Len(t, s.GetAllChecklistItems(), 2)

	smb := s.GetChecklistItemsByServiceType("smb")
	require.Len(t, smb, 1)
	assert.Equal(t, "smb-enum-shares", smb[0].ID)

	assert.Empty(t, s.GetChecklistItemsByServiceType("vnc"))
}

func TestSetChecklistStateUpsert(t *testing.T) {
	s := New()

	input := ChecklistStateInput{
		HostID:          "h1",
		ServiceID:       "s1",
		ChecklistItemID: "smb-enum-shares",
		Completed:       false,
		Notes:           "first pass",
	}

	created := s.SetChecklistState(input)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Completed)

	input.Completed = true
	input.Notes = "anonymous access works"
	updated := s.SetChecklistState(input)

	// Same row: the id is stable across upserts and the new values win.
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Completed)
	assert.Equal(t, "anonymous access works", updated.Notes)

	states := s.GetChecklistStates("h1", "s1")
	require.Len(t, states, 1)
	assert.True(t, states[0].Completed)

	// A different item id creates a separate row.
	input.ChecklistItemID = "smb-enum-vulns"
	other := s.SetChecklistState(input)
	assert.NotEqual(t, created.ID, other.ID)
	assert.Len(t, s.GetChecklistStates("h1", "s1"), 2)
}

func TestDeleteCredentialCascades(t *testing.T) {
	s := New()

	cred := s.CreateCredential(CredentialInput{Username: "svc_sql", Password: "hunter2", Type: CredentialTypePassword})
	keep := s.CreateCredential(CredentialInput{Username: "backup", Type: CredentialTypeKey})

	s.SetCredentialTest(CredentialTestInput{CredentialID: cred.ID, ServiceID: "s1", Status: TestStatusValid})
	s.SetCredentialTest(CredentialTestInput{CredentialID: keep.ID, ServiceID: "s1", Status: TestStatusUntested})

	s.DeleteCredential(cred.ID)

	_, ok := s.GetCredential(cred.ID)
	assert.False(t, ok)

	tests := s.GetAllCredentialTests()
	require.Len(t, tests, 1)
	assert.Equal(t, keep.ID, tests[0].CredentialID)
}

func TestSetCredentialTestUpsert(t *testing.T) {
	s := New()

	created := s.SetCredentialTest(CredentialTestInput{
		CredentialID: "c1", ServiceID: "s1", HostID: "h1", Status: TestStatusUntested,
	})
	updated := s.SetCredentialTest(CredentialTestInput{
		CredentialID: "c1", ServiceID: "s1", HostID: "h1", Status: TestStatusValid,
	})

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, TestStatusValid, updated.Status)
	assert.Len(t, s.GetAllCredentialTests(), 1)

	// A different service makes a new row.
	other := s.SetCredentialTest(CredentialTestInput{
		CredentialID: "c1", ServiceID: "s2", HostID: "h1", Status: TestStatusInvalid,
	})
	assert.NotEqual(t, created.ID, other.ID)
	assert.Len(t, s.GetAllCredentialTests(), 2)
}

func TestUsernamesAndPasswords(t *testing.T) {
	s := New()

	u := s.CreateUsername("administrator", "smtp VRFY")
	assert.NotEmpty(t, u.ID)

	p := s.CreatePassword("Summer2024!", "config backup")
	assert.NotEmpty(t, p.ID)

	require.Len(t, s.GetAllUsernames(), 1)
	require.Len(t, s.GetAllPasswords(), 1)

	got, ok := s.GetUsername(u.ID)
	require.True(t, ok)
	assert.Equal(t, "administrator", got.Username)

	s.DeleteUsername(u.ID)
	s.DeletePassword(p.ID)

	assert.Empty(t, s.GetAllUsernames())
	assert.Empty(t, s.GetAllPasswords())
	_, ok = s.GetPassword(p.ID)
	assert.False(t, ok)
}
