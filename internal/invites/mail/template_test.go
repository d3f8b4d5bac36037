package mail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComposeInvitation(t *testing.T) {
	t.Parallel()

	msg, err := ComposeInvitation(InvitationEmail{
		RecipientEmail:   "alice@example.com",
		RecipientName:    "Alice",
		OrganizationName: "Clinica Dental Sonrisa",
		InviterName:      "Carlos Mendez",
		Role:             "AGENTE",
		PersonalMessage:  "Bienvenida al equipo",
		AcceptURL:        "https://app.comodinia.com/invitations/accept?token=abc",
		ExpiresAt:        time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Equal(t, "alice@example.com", msg.To)
	require.Contains(t, msg.Subject, "Clinica Dental Sonrisa")
	require.Contains(t, msg.HTML, "Carlos Mendez")
	require.Contains(t, msg.HTML, "AGENTE")
	require.Contains(t, msg.HTML, "Bienvenida al equipo")
	require.Contains(t, msg.HTML, "https://app.comodinia.com/invitations/accept?token=abc")
	require.Contains(t, msg.HTML, "08/09/2026")
}

func TestComposeInvitationOmitsEmptyMessage(t *testing.T) {
	t.Parallel()

	msg, err := ComposeInvitation(InvitationEmail{
		RecipientEmail:   "bob@example.com",
		OrganizationName: "Org",
		InviterName:      "Ana",
		Role:             "ADMINISTRADOR",
		AcceptURL:        "https://app.comodinia.com/invitations/accept?token=xyz",
		ExpiresAt:        time.Now().Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	require.NotContains(t, msg.HTML, "blockquote")
}

func TestDevMailerWritesPreview(t *testing.T) {
	t.Parallel()

	m := &DevMailer{Dir: t.TempDir()}
	res, err := m.Send(t.Context(), Message{
		To:      "alice@example.com",
		Subject: "Invitación",
		HTML:    "<p>hola</p>",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.PreviewURL)
	require.Contains(t, res.PreviewURL, "file://")
}
