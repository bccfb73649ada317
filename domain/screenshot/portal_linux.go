//go:build linux

package screenshot

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"net/url"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	portalMethod    = "org.freedesktop.portal.Screenshot.Screenshot"
	portalRequest   = "org.freedesktop.portal.Request"
	portalResponse  = "Response"
	responseSuccess = 0
	responseAborted = 1
)

// PortalCapturer captures through xdg-desktop-portal, the only option on
// Wayland sessions. Window and area modes use the portal's interactive
// picker, so SelectsArea reports true.
type PortalCapturer struct {
	logger *slog.Logger
}

func newPortal(logger *slog.Logger) (Capturer, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("portal: session bus: %w", err)
	}
	defer conn.Close()
	var owner bool
	if err := conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, portalDest).Store(&owner); err != nil {
		return nil, fmt.Errorf("portal: %w", err)
	}
	if !owner {
		return nil, fmt.Errorf("portal: %s not running: %w", portalDest, ErrUnsupported)
	}
	return &PortalCapturer{logger: logger}, nil
}

func (p *PortalCapturer) SelectsArea() bool { return true }

func (p *PortalCapturer) Capture(ctx context.Context, opts Options) (image.Image, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("portal: session bus: %w", err)
	}
	defer conn.Close()

	token := "clicky" + strings.ReplaceAll(uuid.NewString(), "-", "")
	handle := requestPath(conn, token)
	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(handle),
		dbus.WithMatchInterface(portalRequest),
		dbus.WithMatchMember(portalResponse),
	); err != nil {
		return nil, fmt.Errorf("portal: add match: %w", err)
	}
	sigc := make(chan *dbus.Signal, 4)
	conn.Signal(sigc)
	defer conn.RemoveSignal(sigc)

	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
		"interactive":  dbus.MakeVariant(opts.Mode != ModeDesktop),
	}
	if opts.IncludeCursor || opts.IncludeFrame {
		if p.logger != nil {
			p.logger.Debug("portal ignores frame/cursor options; the picker offers them")
		}
	}
	call := conn.Object(portalDest, portalPath).CallWithContext(ctx, portalMethod, 0, "", options)
	if call.Err != nil {
		return nil, fmt.Errorf("portal: screenshot call: %w", call.Err)
	}
	var returned dbus.ObjectPath
	if err := call.Store(&returned); err == nil && returned != "" {
		handle = returned
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case sig, ok := <-sigc:
			if !ok {
				return nil, fmt.Errorf("portal: connection closed")
			}
			if sig.Path != handle || sig.Name != portalRequest+"."+portalResponse {
				continue
			}
			return p.decodeResponse(sig.Body)
		}
	}
}

func (p *PortalCapturer) decodeResponse(body []interface{}) (image.Image, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("portal: malformed response")
	}
	code, _ := body[0].(uint32)
	switch code {
	case responseSuccess:
	case responseAborted:
		return nil, ErrAborted
	default:
		return nil, fmt.Errorf("portal: response code %d", code)
	}
	results, _ := body[1].(map[string]dbus.Variant)
	v, ok := results["uri"]
	if !ok {
		return nil, fmt.Errorf("portal: response without uri")
	}
	raw, _ := v.Value().(string)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "file" {
		return nil, fmt.Errorf("portal: unexpected uri %q", raw)
	}
	img, err := imaging.Open(u.Path)
	if err != nil {
		return nil, fmt.Errorf("portal: open %s: %w", u.Path, err)
	}
	if p.logger != nil {
		p.logger.Info("screenshot captured", "backend", "portal", "file", u.Path)
	}
	return img, nil
}

// requestPath predicts the Request object path so the match rule is in place
// before the call returns.
func requestPath(conn *dbus.Conn, token string) dbus.ObjectPath {
	sender := ""
	if names := conn.Names(); len(names) > 0 {
		sender = strings.ReplaceAll(strings.TrimPrefix(names[0], ":"), ".", "_")
	}
	return dbus.ObjectPath("/org/freedesktop/portal/desktop/request/" + sender + "/" + token)
}

var _ Capturer = (*PortalCapturer)(nil)
