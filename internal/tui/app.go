package tui

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/catalog"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/orchestrators/search"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/view"
)

const (
	prompt      = "Search for Creature Name or ID:"
	keyHelp     = "enter search  tab complete  esc clear  ctrl-c quit"
	noticeHelp  = "[ OK ]"
	maxSuggests = 5
)

// quitEvent asks the event loop to stop.
type quitEvent struct{}

// Config holds the dependencies for the terminal app
type Config struct {
	Screen tcell.Screen
	Client external.Client
	// Display is optional
	Display *view.Display
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Screen == nil {
		vb.RequiredField("Screen")
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// App draws a view.Display on a terminal and feeds key presses to a search
// orchestrator. It is also the orchestrator's notifier: a notice stays on
// screen until the user acknowledges it.
type App struct {
	screen  tcell.Screen
	display *view.Display
	search  search.Service

	mu     sync.Mutex
	notice string
	ack    chan struct{}

	done     chan struct{}
	stopOnce sync.Once
	searches sync.WaitGroup
}

// New creates the app and its search orchestrator.
func New(cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	display := cfg.Display
	if display == nil {
		display = view.NewDisplay()
	}

	app := &App{
		screen:  cfg.Screen,
		display: display,
		done:    make(chan struct{}),
	}

	svc, err := search.NewOrchestrator(&search.Config{
		Client:   cfg.Client,
		Sink:     display,
		Notifier: app,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create search orchestrator")
	}
	app.search = svc

	return app, nil
}

// Run processes terminal events until the user quits or ctx is done.
// Searches still running are cancelled and waited for before it returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		a.stop()
		cancel()
		a.searches.Wait()
	}()

	go func() {
		select {
		case <-ctx.Done():
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(quitEvent{}))
		case <-a.done:
		}
	}()

	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if !a.HandleEvent(ctx, ev) {
			slog.DebugContext(ctx, "Terminal app quitting")
			return nil
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the app
// should stop.
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(quitEvent); ok {
			return false
		}
	case *tcell.EventKey:
		if !a.handleKey(ctx, ev) {
			return false
		}
	}

	a.draw()
	return true
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if a.acknowledge(ev) {
		return true
	}

	input := a.display.InputValue()
	switch ev.Key() {
	case tcell.KeyEnter:
		a.startSearch(ctx)
	case tcell.KeyEscape:
		a.search.Clear(ctx)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if input != "" {
			_, size := utf8.DecodeLastRuneInString(input)
			a.display.SetInputValue(input[:len(input)-size])
		}
	case tcell.KeyTab:
		if hints := suggestions(input); len(hints) > 0 {
			a.display.SetInputValue(hints[0])
		}
	case tcell.KeyRune:
		a.display.SetInputValue(input + string(ev.Rune()))
	}
	return true
}

func (a *App) startSearch(ctx context.Context) {
	a.searches.Add(1)
	go func() {
		defer a.searches.Done()
		a.search.Search(ctx)
		a.redraw()
	}()
}

// Notify shows message until the user acknowledges it, ctx is done or the
// app stops.
func (a *App) Notify(ctx context.Context, message string) {
	ack := make(chan struct{})

	a.mu.Lock()
	a.notice = message
	a.ack = ack
	a.mu.Unlock()
	a.redraw()

	select {
	case <-ack:
	case <-ctx.Done():
	case <-a.done:
	}

	a.mu.Lock()
	if a.ack == ack {
		a.notice = ""
		a.ack = nil
	}
	a.mu.Unlock()
}

// acknowledge consumes keys while a notice is up. Enter, Esc and space
// dismiss it.
func (a *App) acknowledge(ev *tcell.EventKey) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.ack == nil {
		return false
	}

	dismiss := ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyEscape ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
	if dismiss {
		close(a.ack)
		a.ack = nil
		a.notice = ""
	}
	return true
}

func (a *App) noticeText() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.notice
}

func (a *App) redraw() {
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.done) })
}

func (a *App) draw() {
	a.screen.Clear()
	state := a.display.State()
	width, height := a.screen.Size()

	text(a.screen, 0, 0, prompt, styleLabel)
	end := text(a.screen, 0, 1, "> "+state.Input, styleInput)
	a.screen.ShowCursor(end, 1)

	if hints := suggestions(state.Input); len(hints) > 0 {
		text(a.screen, 2, 2, "tab: "+strings.Join(hints, "  "), styleHint)
	}

	if state.InfoVisible {
		a.drawInfo(4, state)
	}

	text(a.screen, 0, height-1, keyHelp, styleHint)

	if notice := a.noticeText(); notice != "" {
		a.drawNotice(width, height, notice)
	}

	a.screen.Show()
}

func (a *App) drawInfo(y int, state view.DisplayState) {
	x := text(a.screen, 0, y, state.Name, styleName)
	text(a.screen, x+1, y, state.ID, styleLabel)
	y++

	x = text(a.screen, 0, y, state.Weight, styleDefault)
	text(a.screen, x+2, y, state.Height, styleDefault)
	y++

	x = 0
	for _, chip := range state.Types {
		style := tcell.StyleDefault.
			Background(tcell.GetColor(view.TypeColor(chip))).
			Foreground(tcell.ColorBlack)
		x = text(a.screen, x, y, " "+chip.Label+" ", style) + 1
	}
	y += 2

	switch {
	case state.Special.Title != "":
		text(a.screen, 0, y, state.Special.Title, styleName)
		y++
		text(a.screen, 2, y, state.Special.Description, styleDefault)
	case state.Special.Placeholder != "":
		text(a.screen, 0, y, state.Special.Placeholder, styleLabel)
	}
	y += 2

	text(a.screen, 0, y, "Base Stats", styleLabel)
	y++
	for _, key := range creature.StatKeys {
		text(a.screen, 2, y, view.StatLabels[key], styleLabel)
		text(a.screen, 16, y, state.Stats[key], styleDefault)
		y++
	}
}

func (a *App) drawNotice(width, height int, message string) {
	boxW := utf8.RuneCountInString(message) + 4
	if n := len(noticeHelp) + 4; n > boxW {
		boxW = n
	}
	boxH := 4
	x := (width - boxW) / 2
	y := (height - boxH) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	fill(a.screen, x, y, boxW, boxH, styleNotice)
	text(a.screen, x+2, y+1, message, styleNotice)
	text(a.screen, x+(boxW-len(noticeHelp))/2, y+2, noticeHelp, styleNotice.Bold(true))
}

// suggestions lists catalog names for name-like input.
func suggestions(input string) []string {
	if search.IsNumeric(strings.TrimSpace(input)) {
		return nil
	}
	return catalog.Suggest(input, maxSuggests)
}
