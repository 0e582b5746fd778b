package app

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/justyntemme/canopy/internal/action"
	"github.com/justyntemme/canopy/internal/debug"
	"github.com/justyntemme/canopy/internal/explorer"
	"github.com/justyntemme/canopy/internal/menu"
)

// Hooks let the host react to workbench changes that outlive the session.
// Any of them may be nil.
type Hooks struct {
	OnFolderOpened func(path string)
	OnThemeChanged func(dark bool)
	OnExit         func()
}

// LoadRequester starts an asynchronous read of path for tree. The result
// must be handed back through tree.CompleteLoad on the UI goroutine.
type LoadRequester func(tree *explorer.Tree, path string)

// Options configures a Workbench. Zero fields get working defaults.
type Options struct {
	Menus    *menu.Model
	Sink     Sink
	Picker   FolderPicker
	Loader   explorer.Loader
	Now      func() time.Time
	DarkMode bool
	Hooks    Hooks

	// RequestLoad switches tree expansion to asynchronous loading
	RequestLoad LoadRequester

	// NewUUID overrides UUID generation
	NewUUID func() string
}

// Workbench is the application state the window renders: explorer tabs,
// menu interaction, theme, and the file last opened from a tree. It is not
// safe for concurrent use; the UI goroutine owns it.
type Workbench struct {
	Tabs        *explorer.TabSet
	Menu        *menu.Interaction
	DarkMode    bool
	CurrentFile string

	sink        Sink
	picker      FolderPicker
	loader      explorer.Loader
	hooks       Hooks
	requestLoad LoadRequester
	newUUID     func() string
}

func NewWorkbench(opts Options) *Workbench {
	if opts.Menus == nil {
		opts.Menus = menu.Default()
	}
	if opts.Sink == nil {
		opts.Sink = NewStatusBar(opts.Now)
	}
	if opts.Picker == nil {
		opts.Picker = NativePicker{}
	}
	if opts.Loader == nil {
		opts.Loader = explorer.NewDirectoryLoader(nil)
	}
	if opts.NewUUID == nil {
		opts.NewUUID = uuid.NewString
	}
	return &Workbench{
		Tabs:        &explorer.TabSet{},
		Menu:        menu.NewInteraction(opts.Menus, opts.Now),
		DarkMode:    opts.DarkMode,
		sink:        opts.Sink,
		picker:      opts.Picker,
		loader:      opts.Loader,
		hooks:       opts.Hooks,
		requestLoad: opts.RequestLoad,
		newUUID:     opts.NewUUID,
	}
}

// Notify forwards messages to the sink in order.
func (w *Workbench) Notify(msgs ...string) {
	for _, m := range msgs {
		w.sink.Notify(m)
	}
}

// messages for actions whose only effect is a status notification
var stubMessages = map[action.Kind]string{
	action.OpenFile:     "Opening file dialog...",
	action.SaveFile:     "Saving file...",
	action.SaveAs:       "Opening save-as dialog...",
	action.SaveAll:      "Saving all open files...",
	action.PrintFile:    "Preparing to print...",
	action.RenameFile:   "Renaming file...",
	action.RefreshFile:  "Refreshing file contents...",
	action.ImportFile:   "Importing file...",
	action.ExportFile:   "Exporting file...",
	action.FileProperty: "Showing file properties...",
	action.Undo:         "Undoing last action...",
	action.Redo:         "Redoing next action...",
	action.Cut:          "Cutting selection...",
	action.Copy:         "Copying selection...",
	action.Paste:        "Pasting...",
	action.Delete:       "Deleting selection...",
	action.GotoLine:     "Opening go-to-line dialog...",
	action.Find:         "Opening find dialog...",
	action.NewQuery:     "Creating new SQL query...",
	action.ConnectDB:    "Opening database connection dialog...",
	action.NewWindow:    "Creating new window...",
	action.About:        "Canopy: a workbench for folders and embedded databases",
}

// Dispatch runs the action identified by id. Every recognized action
// produces at most one notification; unrecognized ids are only logged.
func (w *Workbench) Dispatch(id action.ID) {
	debug.Log(debug.ACTION, "Dispatch: %s (kind %d)", id, id.Kind)

	switch id.Kind {
	case action.OpenFolder:
		w.openFolderFromPicker()
	case action.ToggleDarkMode:
		w.toggleDarkMode()
	case action.NewFile:
		w.CurrentFile = ""
		w.Notify("Created new file")
	case action.CloseFile:
		if w.CurrentFile == "" {
			w.Notify("No file is open")
			return
		}
		w.CurrentFile = ""
		w.Notify("Closing current file...")
	case action.GenerateUUID:
		w.Notify("Generated UUID: " + w.newUUID())
	case action.Exit:
		w.Notify("Exiting...")
		if w.hooks.OnExit != nil {
			w.hooks.OnExit()
		}
	case action.OpenFile, action.SaveFile, action.SaveAs, action.SaveAll,
		action.PrintFile, action.RenameFile, action.RefreshFile,
		action.ImportFile, action.ExportFile, action.FileProperty,
		action.Undo, action.Redo, action.Cut, action.Copy, action.Paste, action.Delete,
		action.GotoLine, action.Find, action.NewQuery, action.ConnectDB,
		action.NewWindow, action.About:
		w.Notify(stubMessages[id.Kind])
	case action.Unrecognized:
		log.Printf("Action: no handler for %q", id.Raw)
	default:
		log.Printf("Action: unhandled kind %d (%q)", id.Kind, id.Raw)
	}
}

func (w *Workbench) openFolderFromPicker() {
	path, ok := w.picker.PickFolder()
	if !ok {
		w.Notify("Folder selection cancelled")
		return
	}
	w.OpenFolder(path)
}

// OpenFolder appends a tab rooted at path and makes it the only active tab.
func (w *Workbench) OpenFolder(path string) *explorer.Tab {
	tab := w.Tabs.Open(path, w.loader)
	debug.Log(debug.APP, "OpenFolder: %s (%d tabs)", path, w.Tabs.Len())
	w.Notify("Opened folder: " + tab.Name)
	if w.hooks.OnFolderOpened != nil {
		w.hooks.OnFolderOpened(path)
	}
	return tab
}

func (w *Workbench) toggleDarkMode() {
	w.DarkMode = !w.DarkMode
	mode := "light"
	if w.DarkMode {
		mode = "dark"
	}
	w.Notify(fmt.Sprintf("Switched to %s mode", mode))
	if w.hooks.OnThemeChanged != nil {
		w.hooks.OnThemeChanged(w.DarkMode)
	}
}

// SwitchTab activates tab i.
func (w *Workbench) SwitchTab(i int) {
	if !w.Tabs.Activate(i) {
		return
	}
	w.Notify("Switched to explorer: " + w.Tabs.At(i).Name)
}

// CloseTab removes tab i.
func (w *Workbench) CloseTab(i int) {
	tab := w.Tabs.At(i)
	if tab == nil || !w.Tabs.Close(i) {
		return
	}
	w.Notify("Closed explorer: " + tab.Name)
}

// ToggleNode expands or collapses a directory of the active tab and
// returns the notifications the caller should apply.
func (w *Workbench) ToggleNode(path string) []string {
	tab := w.Tabs.Active()
	if tab == nil {
		return nil
	}
	node := tab.Tree.Find(path)
	if node == nil {
		return nil
	}

	var result explorer.Toggled
	if w.requestLoad != nil {
		var needsLoad bool
		result, needsLoad = tab.Tree.BeginToggle(path)
		if needsLoad {
			w.requestLoad(tab.Tree, path)
		}
	} else {
		result = tab.Tree.Toggle(path)
	}

	switch result {
	case explorer.Expanded:
		return []string{"Expanded " + node.Name}
	case explorer.Collapsed:
		return []string{"Collapsed " + node.Name}
	}
	return nil
}

// OpenNode handles a click on a tree entry's name and returns the
// notifications the caller should apply. Files become CurrentFile.
func (w *Workbench) OpenNode(path string) []string {
	tab := w.Tabs.Active()
	if tab == nil {
		return nil
	}
	node := tab.Tree.Find(path)
	if node == nil || node.IsPlaceholder() {
		return nil
	}
	if node.IsDir {
		return []string{"Opened folder: " + node.Name}
	}
	w.CurrentFile = node.Path
	return []string{fmt.Sprintf("Opened file: %s (%s)", node.Name, humanize.Bytes(uint64(node.Size)))}
}

// SidebarButton identifies a shortcut button above the explorer.
type SidebarButton int

const (
	SidebarExplorer SidebarButton = iota
	SidebarDatabase
	SidebarSettings
)

// PressSidebar handles a sidebar shortcut button.
func (w *Workbench) PressSidebar(b SidebarButton) {
	switch b {
	case SidebarExplorer:
		w.Dispatch(action.Of(action.OpenFolder))
	case SidebarDatabase:
		w.Notify("Opening database connection manager...")
	case SidebarSettings:
		w.Notify("Opening settings panel...")
	}
}

// ActiveTitle is the heading shown above the active tree.
func (w *Workbench) ActiveTitle() string {
	tab := w.Tabs.Active()
	if tab == nil {
		return ""
	}
	return tab.Name + " - " + tab.RootPath
}

// CurrentFileName returns the base name of CurrentFile, or "".
func (w *Workbench) CurrentFileName() string {
	if w.CurrentFile == "" {
		return ""
	}
	return filepath.Base(w.CurrentFile)
}
