package handlers

import (
	"context"
	"net/http"
	"time"

	soleus "soleus_remote"
	"soleus_remote/internal/protocol"
	"soleus_remote/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockEncoder struct {
	code       service.EncodedCode
	err        error
	lastParams service.CommandParams
	calls      int
}

func (m *mockEncoder) Encode(p service.CommandParams) (service.EncodedCode, error) {
	m.calls++
	m.lastParams = p
	return m.code, m.err
}
func (m *mockEncoder) Info() protocol.Info {
	return protocol.Reference()
}

type mockCatalog struct {
	entries    []protocol.CatalogEntry
	exportN    int
	exportErr  error
	lastExport string
}

func (m *mockCatalog) Entries() []protocol.CatalogEntry { return m.entries }
func (m *mockCatalog) ExportJSON(path string) (int, error) {
	m.lastExport = path
	return m.exportN, m.exportErr
}

type mockCapture struct {
	buttons []soleus.CapturedButton
	listErr error
	status  service.CaptureStatus
}

func (m *mockCapture) Bootstrap(ctx context.Context) error { return nil }
func (m *mockCapture) Observe(ctx context.Context, pronto string, at time.Time) (*soleus.CapturedButton, error) {
	return nil, nil
}
func (m *mockCapture) List(ctx context.Context) ([]soleus.CapturedButton, error) {
	return m.buttons, m.listErr
}
func (m *mockCapture) Status() service.CaptureStatus { return m.status }

type mockTransmitter struct {
	err      error
	lastCode string
	calls    int
}

func (m *mockTransmitter) Transmit(ctx context.Context, pronto string) error {
	m.calls++
	m.lastCode = pronto
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
