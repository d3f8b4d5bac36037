package mail

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/comodin-ia/invites/pkg/idx"
	"github.com/comodin-ia/invites/pkg/slogx"
)

// DevMailer never talks to a real SMTP server. It writes the composed email
// to a local directory and returns a preview URL pointing at the file, so
// developers can open what the invitee would have received.
type DevMailer struct {
	// Dir is where previews are written. Defaults to a subdirectory of the
	// OS temp dir when empty.
	Dir string
}

func (m *DevMailer) Send(ctx context.Context, msg Message) (Result, error) {
	log := slogx.FromContext(ctx)

	dir := m.Dir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "comodin-invites-mail")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return Result{}, fmt.Errorf("mail: failed to create preview dir: %w", err)
	}

	path := filepath.Join(dir, idx.New().String()+".html")
	if err := os.WriteFile(path, []byte(msg.HTML), 0o600); err != nil {
		return Result{}, fmt.Errorf("mail: failed to write preview: %w", err)
	}

	previewURL := "file://" + path
	log.Info("dev mailer: wrote email preview",
		"to", msg.To,
		"subject", msg.Subject,
		"preview_url", previewURL,
	)

	return Result{PreviewURL: previewURL}, nil
}
