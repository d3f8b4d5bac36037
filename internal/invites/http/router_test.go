package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/comodin-ia/invites/internal/invites/domain"
	"github.com/comodin-ia/invites/internal/invites/mail"
	"github.com/comodin-ia/invites/internal/invites/service"
	"github.com/comodin-ia/invites/internal/invites/store"
	"github.com/comodin-ia/invites/internal/invites/store/drivers/sqlite"
	"github.com/comodin-ia/invites/pkg/invitesdk"
	"github.com/comodin-ia/invites/pkg/jwtx"
)

const testJWTSecret = "router-test-secret"

type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) (mail.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return mail.Result{PreviewURL: "file:///tmp/preview.html"}, nil
}

func (m *recordingMailer) last(t *testing.T) mail.Message {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent)
	return m.sent[len(m.sent)-1]
}

type routerFixture struct {
	router *Router
	mailer *recordingMailer
	store  store.Store
	signer *jwtx.Signer
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	mailer := &recordingMailer{}
	invitationService := &service.InvitationService{
		Store:   st,
		Mailer:  mailer,
		BaseURL: "https://app.comodinia.com",
	}

	verifier := &jwtx.Verifier{Secret: []byte(testJWTSecret), Issuer: "comodin-crm"}

	router := NewRouter(verifier, "test", st, slog.New(slog.DiscardHandler))
	router.InvitationService = invitationService
	router.UserService = &service.UserService{Store: st}
	router.BootstrapService = &service.BootstrapService{Store: st, Token: "bootstrap-secret"}
	router.ApplyRoutes()

	return &routerFixture{
		router: router,
		mailer: mailer,
		store:  st,
		signer: &jwtx.Signer{Secret: []byte(testJWTSecret), Issuer: "comodin-crm"},
	}
}

func (f *routerFixture) doJSON(t *testing.T, method, path, token string, body, target any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if target != nil && rec.Code < 300 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
	}
	return rec
}

// bootstrapOwner provisions the initial organization via the HTTP endpoint
// and returns a session token for the owner.
func (f *routerFixture) bootstrapOwner(t *testing.T) (invitesdk.BootstrapResponse, string) {
	t.Helper()

	payload, err := json.Marshal(invitesdk.BootstrapRequest{
		OrganizationName: "Clinica Dental Sonrisa",
		OrganizationSlug: "clinica-sonrisa",
		OwnerEmail:       "carlos@sonrisa.mx",
		OwnerName:        "Carlos Mendez",
		OwnerPassword:    "correct horse battery",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/bootstrap", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Bootstrap-Token", "bootstrap-secret")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out invitesdk.BootstrapResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	token, err := f.signer.Sign(out.OwnerUserID, out.OrganizationID, string(domain.RoleOwner))
	require.NoError(t, err)
	return out, token
}

func TestInvitationLifecycleOverHTTP(t *testing.T) {
	f := newRouterFixture(t)
	_, ownerToken := f.bootstrapOwner(t)

	// Issue an invitation.
	var created invitesdk.CreateInvitationResponse
	rec := f.doJSON(t, http.MethodPost, "/v1/invitations", ownerToken, invitesdk.CreateInvitationRequest{
		Email:     "alicia@example.com",
		Role:      string(domain.RoleAgent),
		FirstName: "Alicia",
		Message:   "Bienvenida al equipo",
	}, &created)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, "PENDING", created.Invitation.Status)
	require.Equal(t, "file:///tmp/preview.html", created.EmailPreviewURL)

	// The API response never exposes the redemption token.
	require.NotContains(t, rec.Body.String(), "token")

	// The token only travels in the email; dig it out of the invitation row.
	inv, err := f.store.Invitations().GetInvitationByID(context.Background(), created.Invitation.ID)
	require.NoError(t, err)
	require.Contains(t, f.mailer.last(t).HTML, inv.Token)

	// Public landing-page lookup.
	var details invitesdk.InvitationDetails
	rec = f.doJSON(t, http.MethodGet, "/v1/invitations/"+inv.Token, "", nil, &details)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, "alicia@example.com", details.Email)
	require.Equal(t, "Clinica Dental Sonrisa", details.OrganizationName)
	require.Equal(t, "Carlos Mendez", details.InvitedByName)

	// Redemption.
	var accepted invitesdk.AcceptInvitationResponse
	rec = f.doJSON(t, http.MethodPost, "/v1/invitations/accept", "", invitesdk.AcceptInvitationRequest{
		Token:    inv.Token,
		Name:     "Alicia",
		Password: "correct horse battery",
	}, &accepted)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, "alicia@example.com", accepted.User.Email)
	require.Equal(t, string(domain.RoleAgent), accepted.User.Role)
	require.Equal(t, "ACCEPTED", accepted.Invitation.Status)

	// Second redemption is rejected.
	rec = f.doJSON(t, http.MethodPost, "/v1/invitations/accept", "", invitesdk.AcceptInvitationRequest{
		Token:    inv.Token,
		Name:     "Impostor",
		Password: "another password",
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	// The new agent can read their profile with a CRM session token.
	agentToken, err := f.signer.Sign(accepted.User.ID, accepted.User.OrganizationID, accepted.User.Role)
	require.NoError(t, err)

	var profile invitesdk.UserInfoResponse
	rec = f.doJSON(t, http.MethodGet, "/v1/userinfo", agentToken, nil, &profile)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, accepted.User.ID, profile.UserID)
	require.Equal(t, "Clinica Dental Sonrisa", profile.OrganizationName)

	// Listing reflects the accepted invitation.
	var list invitesdk.ListInvitationsResponse
	rec = f.doJSON(t, http.MethodGet, "/v1/invitations?status=ACCEPTED", ownerToken, nil, &list)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, list.Invitations, 1)
	require.Equal(t, created.Invitation.ID, list.Invitations[0].ID)
}

func TestInvitationCancellationOverHTTP(t *testing.T) {
	f := newRouterFixture(t)
	_, ownerToken := f.bootstrapOwner(t)

	var created invitesdk.CreateInvitationResponse
	rec := f.doJSON(t, http.MethodPost, "/v1/invitations", ownerToken, invitesdk.CreateInvitationRequest{
		Email: "alicia@example.com",
		Role:  string(domain.RoleAgent),
	}, &created)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.doJSON(t, http.MethodDelete, "/v1/invitations/"+created.Invitation.ID, ownerToken, nil, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Cancelling again conflicts.
	rec = f.doJSON(t, http.MethodDelete, "/v1/invitations/"+created.Invitation.ID, ownerToken, nil, nil)
	require.Equal(t, http.StatusConflict, rec.Code)

	// The invitee now sees the invitation as processed.
	inv, err := f.store.Invitations().GetInvitationByID(context.Background(), created.Invitation.ID)
	require.NoError(t, err)
	rec = f.doJSON(t, http.MethodGet, "/v1/invitations/"+inv.Token, "", nil, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestInviterEndpointsRequireAuth(t *testing.T) {
	f := newRouterFixture(t)
	bootstrap, _ := f.bootstrapOwner(t)

	t.Run("missing token", func(t *testing.T) {
		rec := f.doJSON(t, http.MethodPost, "/v1/invitations", "", invitesdk.CreateInvitationRequest{
			Email: "alicia@example.com",
			Role:  string(domain.RoleAgent),
		}, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := f.doJSON(t, http.MethodGet, "/v1/invitations", "not-a-jwt", nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		forged := &jwtx.Signer{Secret: []byte("other-secret"), Issuer: "comodin-crm"}
		token, err := forged.Sign("someone", bootstrap.OrganizationID, string(domain.RoleOwner))
		require.NoError(t, err)

		rec := f.doJSON(t, http.MethodGet, "/v1/invitations", token, nil, nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("agents cannot issue invitations", func(t *testing.T) {
		token, err := f.signer.Sign("agent-id", bootstrap.OrganizationID, string(domain.RoleAgent))
		require.NoError(t, err)

		rec := f.doJSON(t, http.MethodPost, "/v1/invitations", token, invitesdk.CreateInvitationRequest{
			Email: "alguien@example.com",
			Role:  string(domain.RoleAgent),
		}, nil)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestInvitationCreateConflictsOverHTTP(t *testing.T) {
	f := newRouterFixture(t)
	_, ownerToken := f.bootstrapOwner(t)

	rec := f.doJSON(t, http.MethodPost, "/v1/invitations", ownerToken, invitesdk.CreateInvitationRequest{
		Email: "alicia@example.com",
		Role:  string(domain.RoleAgent),
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Duplicate pending.
	rec = f.doJSON(t, http.MethodPost, "/v1/invitations", ownerToken, invitesdk.CreateInvitationRequest{
		Email: "alicia@example.com",
		Role:  string(domain.RoleAgent),
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	var errResp invitesdk.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	require.Equal(t, invitesdk.CodeDuplicatePending, errResp.Error)

	// Existing member (the owner).
	rec = f.doJSON(t, http.MethodPost, "/v1/invitations", ownerToken, invitesdk.CreateInvitationRequest{
		Email: "carlos@sonrisa.mx",
		Role:  string(domain.RoleAdmin),
	}, nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	require.Equal(t, invitesdk.CodeAlreadyMember, errResp.Error)
}

func TestBootstrapEndpointGuards(t *testing.T) {
	f := newRouterFixture(t)

	payload, err := json.Marshal(invitesdk.BootstrapRequest{
		OrganizationName: "Org",
		OrganizationSlug: "org",
		OwnerEmail:       "a@b.mx",
		OwnerName:        "A",
		OwnerPassword:    "correct horse battery",
	})
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/bootstrap", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/bootstrap", bytes.NewReader(payload))
		req.Header.Set("X-Bootstrap-Token", "wrong")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("second bootstrap conflicts", func(t *testing.T) {
		f.bootstrapOwner(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/bootstrap", bytes.NewReader(payload))
		req.Header.Set("X-Bootstrap-Token", "bootstrap-secret")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHealthEndpoints(t *testing.T) {
	f := newRouterFixture(t)

	var live invitesdk.HealthResponse
	rec := f.doJSON(t, http.MethodGet, "/livez", "", nil, &live)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	var ready invitesdk.HealthResponse
	rec = f.doJSON(t, http.MethodGet, "/readyz", "", nil, &ready)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestExpiredInvitationIsGoneOverHTTP(t *testing.T) {
	f := newRouterFixture(t)
	_, ownerToken := f.bootstrapOwner(t)

	f.router.InvitationService.InviteTTL = time.Nanosecond
	var created invitesdk.CreateInvitationResponse
	rec := f.doJSON(t, http.MethodPost, "/v1/invitations", ownerToken, invitesdk.CreateInvitationRequest{
		Email: "alicia@example.com",
		Role:  string(domain.RoleAgent),
	}, &created)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	inv, err := f.store.Invitations().GetInvitationByID(context.Background(), created.Invitation.ID)
	require.NoError(t, err)

	rec = f.doJSON(t, http.MethodGet, "/v1/invitations/"+inv.Token, "", nil, nil)
	require.Equal(t, http.StatusGone, rec.Code)
}
