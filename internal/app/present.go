package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/nutshell/internal/deck"
	"github.com/vk/nutshell/internal/host"
	"github.com/vk/nutshell/internal/presenter"
	"github.com/vk/nutshell/internal/unit"
	"github.com/vk/nutshell/internal/view"
	"golang.org/x/term"
)

const presentHelp = "n/space next · p previous · g first · r refresh · q quit"

// screen writes whole frames to a terminal. In raw mode the terminal does
// not translate newlines, so they are written as CRLF after clearing.
type screen struct {
	w   io.Writer
	raw bool
}

func (s *screen) show(text string) {
	if s.raw {
		text = "\x1b[H\x1b[2J" + strings.ReplaceAll(text, "\n", "\r\n")
	}
	fmt.Fprint(s.w, text+s.newline())
}

func (s *screen) newline() string {
	if s.raw {
		return "\r\n"
	}
	return "\n"
}

// presentation is the terminal driver's state. It is only touched on the
// host loop.
type presentation struct {
	nav    *deck.Navigator
	host   *host.Host
	screen *screen
}

func (p *presentation) key() string { return stepKey(p.nav.Position() + 1) }

// draw renders the current step, realizing its example if it has one.
func (p *presentation) draw() {
	step, ok := p.nav.Current()
	if !ok {
		return
	}
	if !step.HasExample() {
		p.host.UnmountAll()
		p.show(step, "")
		return
	}
	key := p.key()
	p.host.UnmountExcept(key)
	p.host.Mount(key, step.Example)
	v, err := p.host.Render(key)
	if err != nil {
		p.show(step, err.Error())
		return
	}
	p.show(step, view.String(v))
}

func (p *presentation) show(step deck.Step, body string) {
	f := presenter.NewFrame(p.nav.Position(), p.nav.Len(), step, body)
	p.screen.show(f.String() + "\n\n" + presentHelp)
}

// press handles one key. It reports false when the presentation should end.
func (p *presentation) press(k byte) bool {
	switch k {
	case 'q', 3, 4: // q, Ctrl-C, Ctrl-D
		return false
	case 'n', ' ', 'l':
		if p.nav.Next() {
			p.draw()
		}
	case 'p', 'h':
		if p.nav.Prev() {
			p.draw()
		}
	case 'g':
		if p.nav.Goto(0) {
			p.draw()
		}
	case 'r':
		if _, err := p.host.Dispatch(p.key(), unit.Action{Name: unit.ActionRefresh}); err == nil {
			p.draw()
		}
	}
	return true
}

// Present walks through the deck in the terminal, reading single key presses
// from in. When in is a terminal it is switched to raw mode for the duration.
func (a *App) Present(ctx context.Context, in io.Reader, out io.Writer) error {
	scr := &screen{w: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		state, err := term.MakeRaw(int(f.Fd()))
		if err != nil {
			return fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() { _ = term.Restore(int(f.Fd()), state) }()
		scr.raw = true
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	loop := host.NewLoop(ctx)
	go loop.Run()

	p := &presentation{
		nav:    deck.NewNavigator(a.deck),
		host:   host.New("present", loop, a.logger),
		screen: scr,
	}
	p.host.OnSettle(func(key string, v view.Node) {
		if key != p.key() {
			return
		}
		step, _ := p.nav.Current()
		p.show(step, view.String(v))
	})
	if err := loop.Do(p.draw); err != nil {
		return err
	}

	keys := make(chan byte)
	readErr := make(chan error, 1)
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := in.Read(buf); err != nil {
				readErr <- err
				return
			}
			select {
			case keys <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read keys: %w", err)
		case k := <-keys:
			cont := true
			if err := loop.Do(func() { cont = p.press(k) }); err != nil {
				return nil
			}
			if !cont {
				_ = loop.Do(p.host.UnmountAll)
				return nil
			}
		}
	}
}
