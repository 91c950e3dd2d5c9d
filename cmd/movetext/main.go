// Package main is the entry point for the movetext demo editor.
//
// The demo opens a file (or a scratch buffer), renders it with tcell,
// and wires the displacement engine to Alt+arrow keys:
//
//	arrows        move the cursor
//	Shift+arrows  extend the selection
//	Alt+arrows    move the line or selection
//	1-9           count prefix for the next move
//	Esc           collapse the selection
//	Ctrl+S        save
//	Ctrl+Q        quit
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/movetext/internal/config"
	"github.com/dshills/movetext/internal/dispatcher"
	"github.com/dshills/movetext/internal/dispatcher/execctx"
	"github.com/dshills/movetext/internal/dispatcher/handler"
	movehandler "github.com/dshills/movetext/internal/dispatcher/handlers/move"
	"github.com/dshills/movetext/internal/engine"
	"github.com/dshills/movetext/internal/input"
	"github.com/dshills/movetext/internal/plugin/lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

const sampleText = "movetext demo\n\nUse Alt+arrows to move this line.\nSelect with Shift+arrows, then move the block.\nA count prefix (2, 3, ...) multiplies the distance.\n"

type options struct {
	ConfigPath string
	ScriptPath string
	FilePath   string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	app, err := newApp(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer app.shutdown()

	if err := app.loop(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.ScriptPath, "script", "", "Lua script to run at startup")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "movetext - text displacement demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: movetext [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("movetext %s (%s)\n", version, commit)
		os.Exit(0)
	}

	opts.FilePath = flag.Arg(0)
	return opts
}

// app owns the demo's terminal state and subsystems.
type app struct {
	screen   tcell.Screen
	session  *engine.Session
	registry *config.Registry
	disp     *dispatcher.Dispatcher
	runtime  *lua.Runtime
	watcher  *config.Watcher

	filePath string
	topLine  uint32
	count    int
	status   string
}

func newApp(opts options) (*app, error) {
	content := sampleText
	if opts.FilePath != "" {
		data, err := os.ReadFile(opts.FilePath)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		content = string(data)
	}

	registry := config.NewWithDefaults()
	if opts.ConfigPath != "" {
		if err := config.NewLoader(registry).Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}

	session := engine.NewSession(
		engine.WithContent(content),
		engine.WithTabWidth(registry.Int(config.SettingTabWidth)),
	)

	a := &app{
		session:  session,
		registry: registry,
		filePath: opts.FilePath,
		status:   "ready",
	}

	a.disp = dispatcher.NewSystem(session, registry)
	a.registerCursorActions()

	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(registry, opts.ConfigPath,
			config.WithReloadHandler(a.onConfigReload))
		if err != nil {
			return nil, err
		}
		a.watcher = w
	}

	a.runtime = lua.NewRuntime(a.disp, registry)
	if opts.ScriptPath != "" {
		if err := a.runtime.ExecFile(opts.ScriptPath); err != nil {
			return nil, err
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	a.screen = screen

	return a, nil
}

func (a *app) shutdown() {
	if a.screen != nil {
		a.screen.Fini()
	}
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if a.runtime != nil {
		a.runtime.Close()
	}
}

// onConfigReload is called on the watcher's goroutine after the config
// file changes. The status message rides the interrupt payload so only
// the event loop writes app state.
func (a *app) onConfigReload(path string, err error) {
	if a.screen != nil {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(reloadStatus(err)))
	}
}

// reloadStatus formats the status line message for a config reload.
func reloadStatus(err error) string {
	if err != nil {
		return fmt.Sprintf("config reload failed: %v", err)
	}
	return "config reloaded"
}

// registerCursorActions wires plain cursor movement through the
// dispatcher so unrelated actions reset the move column chain.
func (a *app) registerCursorActions() {
	moves := map[string]func(){
		"cursor.left":  func() { a.session.SetCursor(a.session.CursorOffset() - 1) },
		"cursor.right": func() { a.session.SetCursor(a.session.CursorOffset() + 1) },
		"cursor.up":    func() { a.moveCursorLine(-1) },
		"cursor.down":  func() { a.moveCursorLine(1) },
	}
	for name, fn := range moves {
		move := fn
		a.disp.RegisterHandlerFunc(name, func(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
			move()
			return handler.Success()
		})
	}
}

func (a *app) moveCursorLine(delta int) {
	pt := a.session.CursorPoint()
	line := int64(pt.Line) + int64(delta)
	if line < 0 {
		line = 0
	}
	a.session.SetCursor(a.session.PointToOffset(engine.Point{Line: uint32(line), Column: pt.Column}))
}

func (a *app) loop() error {
	for {
		a.draw()
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if msg, ok := ev.Data().(string); ok {
				a.status = msg
			}
		case *tcell.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		}
	}
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	alt := ev.Modifiers()&tcell.ModAlt != 0
	shift := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlS:
		a.save()
		return false
	case tcell.KeyEscape:
		a.session.SetCursor(a.session.CursorOffset())
		a.count = 0
		a.status = "ready"
		return false
	case tcell.KeyUp:
		a.arrow(input.DirUp, alt, shift)
		return false
	case tcell.KeyDown:
		a.arrow(input.DirDown, alt, shift)
		return false
	case tcell.KeyLeft:
		a.arrow(input.DirLeft, alt, shift)
		return false
	case tcell.KeyRight:
		a.arrow(input.DirRight, alt, shift)
		return false
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= '1' && r <= '9' {
			a.count = a.count*10 + int(r-'0')
			a.status = fmt.Sprintf("count %d", a.count)
		}
		return false
	default:
		return false
	}
}

// arrow routes an arrow key press to a cursor move, selection
// extension, or text displacement.
func (a *app) arrow(dir input.Direction, alt, shift bool) {
	if alt {
		a.dispatchMove(dir)
		return
	}
	if shift {
		a.extendSelection(dir)
		return
	}
	a.dispatchCursor(dir)
}

func (a *app) dispatchMove(dir input.Direction) {
	name := map[input.Direction]string{
		input.DirUp:    movehandler.ActionTextUp,
		input.DirDown:  movehandler.ActionTextDown,
		input.DirLeft:  movehandler.ActionTextLeft,
		input.DirRight: movehandler.ActionTextRight,
	}[dir]

	action := input.NewAction(name).WithCount(a.takeCount())
	res := a.disp.Dispatch(action)
	if res.IsError() {
		a.status = res.Error.Error()
		return
	}
	a.status = fmt.Sprintf("moved %s", dir)
}

func (a *app) dispatchCursor(dir input.Direction) {
	name := map[input.Direction]string{
		input.DirUp:    "cursor.up",
		input.DirDown:  "cursor.down",
		input.DirLeft:  "cursor.left",
		input.DirRight: "cursor.right",
	}[dir]

	a.count = 0
	if res := a.disp.Dispatch(input.NewAction(name)); res.IsError() {
		a.status = res.Error.Error()
	}
}

func (a *app) extendSelection(dir input.Direction) {
	s := a.session
	sel := s.Selection()

	anchor := sel.Anchor
	if !s.MarkActive() {
		anchor = s.CursorOffset()
	}

	head := sel.Head
	switch dir {
	case input.DirLeft:
		head--
	case input.DirRight:
		head++
	case input.DirUp, input.DirDown:
		pt := s.OffsetToPoint(head)
		line := int64(pt.Line)
		if dir == input.DirUp {
			line--
		} else {
			line++
		}
		if line < 0 {
			line = 0
		}
		head = s.PointToOffset(engine.Point{Line: uint32(line), Column: pt.Column})
	}
	if head < 0 {
		head = 0
	}
	if head > s.Len() {
		head = s.Len()
	}

	s.SetSelection(engine.Selection{Anchor: anchor, Head: head})
	a.count = 0
}

func (a *app) takeCount() int {
	n := a.count
	a.count = 0
	if n < 1 {
		n = 1
	}
	return n
}

func (a *app) save() {
	if a.filePath == "" {
		a.status = "no file to save"
		return
	}
	if err := os.WriteFile(a.filePath, []byte(a.session.Text()), 0o644); err != nil {
		a.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	a.status = fmt.Sprintf("saved %s", a.filePath)
}

func (a *app) draw() {
	s := a.session
	screen := a.screen
	screen.Clear()

	width, height := screen.Size()
	if height < 2 {
		screen.Show()
		return
	}
	textRows := uint32(height - 1)

	a.scrollTo(textRows)

	selStart, selEnd := engine.ByteOffset(-1), engine.ByteOffset(-1)
	if s.MarkActive() {
		sel := s.Selection()
		selStart, selEnd = sel.Start(), sel.End()
	}

	normal := tcell.StyleDefault
	selected := tcell.StyleDefault.Reverse(true)
	tabWidth := a.registry.Int(config.SettingTabWidth)

	for row := uint32(0); row < textRows; row++ {
		line := a.topLine + row
		if line >= s.LineCount() {
			break
		}
		lineText := s.LineText(line)
		offset := s.LineStartOffset(line)

		x := 0
		for _, r := range lineText {
			style := normal
			if offset >= selStart && offset < selEnd {
				style = selected
			}
			if r == '\t' {
				next := (x/tabWidth + 1) * tabWidth
				for ; x < next && x < width; x++ {
					screen.SetContent(x, int(row), ' ', nil, style)
				}
			} else if x < width {
				screen.SetContent(x, int(row), r, nil, style)
				x++
			}
			offset += engine.ByteOffset(len(string(r)))
		}
	}

	a.drawStatus(width, height-1)

	cur := s.CursorPoint()
	if cur.Line >= a.topLine && cur.Line < a.topLine+textRows {
		screen.ShowCursor(a.screenColumn(cur, tabWidth), int(cur.Line-a.topLine))
	} else {
		screen.HideCursor()
	}

	screen.Show()
}

// scrollTo keeps the cursor line inside the visible window.
func (a *app) scrollTo(textRows uint32) {
	line := a.session.CursorPoint().Line
	if line < a.topLine {
		a.topLine = line
	}
	if line >= a.topLine+textRows {
		a.topLine = line - textRows + 1
	}
}

// screenColumn converts a byte column to a screen column, expanding tabs.
func (a *app) screenColumn(pt engine.Point, tabWidth int) int {
	lineText := a.session.LineText(pt.Line)
	x := 0
	for i, r := range lineText {
		if uint32(i) >= pt.Column {
			break
		}
		if r == '\t' {
			x = (x/tabWidth + 1) * tabWidth
		} else {
			x++
		}
	}
	return x
}

func (a *app) drawStatus(width, row int) {
	cur := a.session.CursorPoint()
	policies := fmt.Sprintf("col:%v lines:%v",
		a.registry.Bool(config.SettingMaintainColumn),
		a.registry.Bool(config.SettingWholeLines))

	name := a.filePath
	if name == "" {
		name = "[scratch]"
	}
	text := fmt.Sprintf(" %s  %d:%d  %s  %s", name, cur.Line+1, cur.Column+1, policies, a.status)

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		a.screen.SetContent(x, row, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		a.screen.SetContent(x, row, ' ', nil, style)
	}
}
