package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theawkwardchild/nmap-navigator/internal/config"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	st := store.New()
	return New(config.Default(), st), st
}

func TestNewSeedsChecklistItems(t *testing.T) {
	_, st := newTestServer(t)

	items := st.GetAllChecklistItems()
	assert.NotEmpty(t, items)
	assert.NotEmpty(t, st.GetChecklistItemsByServiceType("smb"))
	assert.NotEmpty(t, st.GetChecklistItemsByServiceType("http"))
}

func TestHealthEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody)
	rec := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestVersionEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", http.NoBody)
	rec := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "nmap-navigator", body["service"])
}

func TestMetricsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "navigator_imported_hosts_total")
	assert.Contains(t, rec.Body.String(), "navigator_inventory_hosts")
}

// TestScanUploadFlow exercises the primary workflow: upload a report, list
// the resulting hosts and services, then fetch the checklist selected by the
// service's classified type.
func TestScanUploadFlow(t *testing.T) {
	server, _ := newTestServer(t)
	router := server.GetRouter()

	scan := `<nmaprun scanner="nmap">
	  <host>
	    <status state="up"/>
	    <address addr="10.0.0.5" addrtype="ipv4"/>
	    <ports>
	      <port protocol="tcp" portid="445">
	        <state state="open"/>
	        <service name="microsoft-ds" product="Windows Server 2019"/>
	      </port>
	    </ports>
	  </host>
	</nmaprun>`

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "scan.xml")
	require.NoError(t, err)
	_, err = part.Write([]byte(scan))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/scans/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The host shows up in the inventory.
	req = httptest.NewRequest(http.MethodGet, "/api/hosts", http.NoBody)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var hosts []store.Host
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hosts))
	require.Len(t, hosts, 1)
	assert.Equal(t, "10.0.0.5", hosts[0].IP)

	// So does its service.
	req = httptest.NewRequest(http.MethodGet, "/api/services", http.NoBody)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var services []store.Service
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &services))
	require.Len(t, services, 1)
	assert.Equal(t, 445, services[0].Port)
	assert.Equal(t, hosts[0].ID, services[0].HostID)

	// microsoft-ds classifies as smb, so the smb checklist is returned.
	req = httptest.NewRequest(http.MethodGet, "/api/checklists?serviceId="+services[0].ID, http.NoBody)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []store.ChecklistItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, "smb", item.ServiceType)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nope", http.NoBody)
	rec := httptest.NewRecorder()
	server.GetRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
