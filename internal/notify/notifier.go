// Package notify sends fire-and-forget HTTP notifications when chord
// commands fire. The primary use case is ntfy.sh, but any HTTP webhook works.
package notify

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/LISSConsulting/LISSTech.KeyChord/internal/command"
	"github.com/LISSConsulting/LISSTech.KeyChord/internal/keys"
)

// Notifier posts plain-text HTTP notifications for command invocations.
type Notifier struct {
	url    string
	title  string
	onFire bool
	client *http.Client
	log    zerolog.Logger
}

// New creates a Notifier. title is used as the X-Title header; if empty,
// "KeyChord" is used instead.
func New(notifURL, title string, onFire bool, log zerolog.Logger) *Notifier {
	if title == "" {
		title = "KeyChord"
	}
	return &Notifier{
		url:    notifURL,
		title:  title,
		onFire: onFire,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log.With().Str("component", "notify").Logger(),
	}
}

// Hook is a command.Dispatcher.OnFire-compatible function. The POST runs on
// its own goroutine.
func (n *Notifier) Hook(f command.Fire) {
	if !n.onFire || n.url == "" {
		return
	}
	go n.post(Message(f))
}

// Message renders the notification body for a fire.
func Message(f command.Fire) string {
	return fmt.Sprintf("%s fired in set %q", keys.Format(f.Chord), f.Set)
}

// post sends a plain-text POST to the configured URL. Failures are logged at
// debug level and otherwise ignored.
func (n *Notifier) post(message string) {
	req, err := http.NewRequest(http.MethodPost, n.url, strings.NewReader(message))
	if err != nil {
		n.log.Debug().Err(err).Msg("build notification request")
		return
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Title", n.title)
	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Debug().Err(err).Msg("post notification")
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.log.Debug().Int("status", resp.StatusCode).Msg("notification rejected")
	}
}
