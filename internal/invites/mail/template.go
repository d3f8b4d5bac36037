package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// InvitationEmail carries everything the invitation template needs.
type InvitationEmail struct {
	RecipientEmail   string
	RecipientName    string // first name when provided, else empty
	OrganizationName string
	InviterName      string
	Role             string
	PersonalMessage  string
	AcceptURL        string
	ExpiresAt        time.Time
}

// The product is Spanish-language; the invitee-facing email follows suit.
var invitationTemplate = template.Must(template.New("invitation").Parse(`<!DOCTYPE html>
<html lang="es">
<body style="font-family: Arial, sans-serif; color: #1f2937; max-width: 600px; margin: 0 auto; padding: 24px;">
  <h2 style="color: #111827;">Te han invitado a {{.OrganizationName}}</h2>
  <p>Hola{{if .RecipientName}} {{.RecipientName}}{{end}},</p>
  <p><strong>{{.InviterName}}</strong> te ha invitado a unirte a
    <strong>{{.OrganizationName}}</strong> en COMOD&Iacute;N IA con el rol de
    <strong>{{.Role}}</strong>.</p>
  {{if .PersonalMessage}}
  <blockquote style="border-left: 4px solid #e5e7eb; margin: 16px 0; padding: 8px 16px; color: #4b5563;">
    {{.PersonalMessage}}
  </blockquote>
  {{end}}
  <p style="margin: 24px 0;">
    <a href="{{.AcceptURL}}"
       style="background-color: #4f46e5; color: #ffffff; padding: 12px 24px; border-radius: 6px; text-decoration: none;">
      Aceptar invitaci&oacute;n
    </a>
  </p>
  <p style="color: #6b7280; font-size: 14px;">
    Este enlace expira el {{.ExpiresAt.Format "02/01/2006"}}. Si no esperabas
    esta invitaci&oacute;n, puedes ignorar este correo.
  </p>
</body>
</html>`))

// ComposeInvitation renders the invitation email for delivery.
func ComposeInvitation(data InvitationEmail) (Message, error) {
	var body strings.Builder
	if err := invitationTemplate.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("mail: failed to render invitation template: %w", err)
	}

	return Message{
		To:      data.RecipientEmail,
		ToName:  data.RecipientName,
		Subject: fmt.Sprintf("Invitación a %s en COMODÍN IA", data.OrganizationName),
		HTML:    body.String(),
	}, nil
}
