package app

import (
	"image"
	"log"
	"os"
	"sync"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/justyntemme/canopy/internal/config"
	"github.com/justyntemme/canopy/internal/debug"
	"github.com/justyntemme/canopy/internal/explorer"
	"github.com/justyntemme/canopy/internal/fs"
	"github.com/justyntemme/canopy/internal/menu"
	"github.com/justyntemme/canopy/internal/ui"
)

// Orchestrator owns the window and connects the renderer, the workbench,
// the directory worker, and the config file.
type Orchestrator struct {
	window *app.Window
	fs     *fs.System
	ui     *ui.Renderer
	cfg    *config.Manager
	status *StatusBar
	bench  *Workbench

	// Outstanding directory reads; frame loop only
	loads *loadRouter

	mu        sync.Mutex
	responses []fs.Response

	lastSize  image.Point // In dp
	maximized bool
}

func NewOrchestrator(cfg *config.Manager) *Orchestrator {
	menus := menu.Default()
	o := &Orchestrator{
		window: new(app.Window),
		fs:     fs.NewSystem(),
		ui:     ui.NewRenderer(menus),
		cfg:    cfg,
		status: NewStatusBar(nil),
		loads:  newLoadRouter(),
	}
	o.bench = NewWorkbench(Options{
		Menus:       menus,
		Sink:        o.status,
		Picker:      NativePicker{},
		DarkMode:    cfg.IsDarkMode(),
		RequestLoad: o.requestLoad,
		Hooks: Hooks{
			OnFolderOpened: cfg.AddRecentFolder,
			OnThemeChanged: cfg.SetDarkMode,
			OnExit:         func() { o.window.Perform(system.ActionClose) },
		},
	})
	return o
}

func (o *Orchestrator) Run(startPath string) error {
	debug.Log(debug.APP, "Run: start path %q", startPath)

	winCfg := o.cfg.Get().Window
	opts := []app.Option{
		app.Title("Canopy"),
		app.Size(unit.Dp(winCfg.Width), unit.Dp(winCfg.Height)),
	}
	if winCfg.Maximized {
		opts = append(opts, app.Maximized.Option())
	}
	o.window.Option(opts...)

	go o.fs.Start()
	go o.processEvents()

	if startPath != "" {
		if info, err := os.Stat(startPath); err != nil || !info.IsDir() {
			o.status.Notify("Not a folder: " + startPath)
		} else {
			o.bench.OpenFolder(startPath)
		}
	}

	var ops op.Ops
	for {
		switch e := o.window.Event().(type) {
		case app.DestroyEvent:
			o.saveWindow()
			return e.Err
		case app.ConfigEvent:
			o.maximized = e.Config.Mode == app.Maximized
		case app.FrameEvent:
			o.applyResponses()
			gtx := app.NewContext(&ops, e)
			o.lastSize = image.Pt(int(e.Metric.PxToDp(e.Size.X)), int(e.Metric.PxToDp(e.Size.Y)))

			state := o.snapshot()
			for _, evt := range o.ui.Layout(gtx, &state) {
				o.handleUIEvent(evt)
			}
			e.Frame(gtx.Ops)
		}
	}
}

// snapshot copies what the renderer needs out of the workbench.
func (o *Orchestrator) snapshot() ui.State {
	b := o.bench
	state := ui.State{
		Menu:        b.Menu.State(),
		Title:       b.ActiveTitle(),
		Status:      o.status.Message(),
		CurrentFile: b.CurrentFile,
		DarkMode:    b.DarkMode,
	}
	if t, ok := o.status.ExpiresAt(); ok {
		state.StatusExpiresAt = t
	}
	if err := o.cfg.ParseError(); err != nil {
		state.ConfigError = err.Error()
	}
	for _, tab := range b.Tabs.Tabs() {
		state.Tabs = append(state.Tabs, ui.TabView{Name: tab.Name, Active: tab.Active})
	}
	if tab := b.Tabs.Active(); tab != nil {
		state.Rows = tab.Tree.Rows()
	}
	return state
}

var sidebarButtons = map[ui.SidebarButton]SidebarButton{
	ui.SidebarExplorer: SidebarExplorer,
	ui.SidebarDatabase: SidebarDatabase,
	ui.SidebarSettings: SidebarSettings,
}

func (o *Orchestrator) handleUIEvent(evt ui.UIEvent) {
	b := o.bench
	switch evt.Action {
	case ui.ActionMenuHeader:
		b.Menu.HeaderClicked(evt.Menu, evt.Rect)
	case ui.ActionMenuItem:
		b.Menu.ItemClicked(evt.Index, b)
	case ui.ActionMenuCancel:
		b.Menu.Cancel()
	case ui.ActionClickOutside:
		b.Menu.ClickOutside()
	case ui.ActionDispatch:
		b.Dispatch(evt.Command)
	case ui.ActionToggleNode:
		b.Notify(b.ToggleNode(evt.Path)...)
	case ui.ActionOpenNode:
		b.Notify(b.OpenNode(evt.Path)...)
	case ui.ActionSwitchTab:
		b.SwitchTab(evt.Index)
	case ui.ActionCloseTab:
		b.CloseTab(evt.Index)
	case ui.ActionSidebar:
		if sb, ok := sidebarButtons[evt.Sidebar]; ok {
			b.PressSidebar(sb)
		}
	}
	o.window.Invalidate()
}

// requestLoad hands a directory read to the fs worker.
func (o *Orchestrator) requestLoad(tree *explorer.Tree, path string) {
	o.fs.RequestChan <- o.loads.request(tree, path)
}

// processEvents queues worker responses for the frame loop and wakes it.
func (o *Orchestrator) processEvents() {
	for resp := range o.fs.ResponseChan {
		o.mu.Lock()
		o.responses = append(o.responses, resp)
		o.mu.Unlock()
		o.window.Invalidate()
	}
}

// applyResponses installs finished reads. Runs on the frame loop only.
func (o *Orchestrator) applyResponses() {
	o.mu.Lock()
	responses := o.responses
	o.responses = nil
	o.mu.Unlock()

	for _, resp := range responses {
		o.loads.apply(resp)
	}
}

func (o *Orchestrator) saveWindow() {
	if o.lastSize.X <= 0 || o.lastSize.Y <= 0 {
		return
	}
	w := config.WindowConfig{Maximized: o.maximized}
	if o.maximized {
		// Keep the restored size rather than the maximized one
		prev := o.cfg.Get().Window
		w.Width, w.Height = prev.Width, prev.Height
	} else {
		w.Width, w.Height = o.lastSize.X, o.lastSize.Y
	}
	o.cfg.SetWindow(w)
}

// Main starts the window on its own goroutine and hands the main thread to
// Gio, as the platform event loops require.
func Main(startPath string) {
	cfg := config.NewManager()
	if err := cfg.Load(); err != nil {
		log.Printf("Config: using defaults: %v", err)
	}

	go func() {
		o := NewOrchestrator(cfg)
		if err := o.Run(startPath); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
