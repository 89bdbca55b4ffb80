package presenter

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/vk/nutshell/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultPath is where the Hub is mounted.
const DefaultPath = "/socket.io/"

// Follow connects to the hub served at rawURL and calls onFrame for every
// step the presenter shows. It blocks until ctx is done or the connection
// cannot be established. onFrame runs on the client's event goroutine.
func Follow(ctx context.Context, rawURL string, onFrame func(Frame)) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("URL %q must include a scheme and host", rawURL)
	}
	logger := ctxlog.FromContext(ctx).With("url", rawURL)

	path := parsedURL.Path
	if path == "" || path == "/" {
		path = DefaultPath
	}
	opts := socket.DefaultOptions()
	opts.SetPath(path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host), opts)
	io := manager.Socket("/", opts)
	defer func() {
		logger.Debug("Disconnecting follower.")
		io.Disconnect()
	}()

	failed := make(chan error, 1)

	io.On(types.EventName("connect"), func(...any) {
		logger.Info("Following presenter.", "sid", io.Id())
	})
	io.On(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connection failed")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case failed <- err:
		default:
		}
	})
	io.On(types.EventName(EventStep), func(data ...any) {
		if len(data) == 0 {
			return
		}
		f, err := decodeFrame(data[0])
		if err != nil {
			logger.Warn("Ignoring step event.", "error", err)
			return
		}
		onFrame(f)
	})

	io.Connect()

	select {
	case <-ctx.Done():
		return nil
	case err := <-failed:
		return fmt.Errorf("failed to follow %s: %w", rawURL, err)
	}
}
