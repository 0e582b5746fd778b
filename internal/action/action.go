// Package action names the commands that menu items and shortcuts trigger.
package action

// Kind is the closed set of actions the workbench knows how to run.
type Kind int

const (
	Unrecognized Kind = iota // Carries the raw id; handled by the log-only fallback

	OpenFolder
	ToggleDarkMode

	NewFile
	OpenFile
	SaveFile
	SaveAs
	SaveAll
	CloseFile
	PrintFile
	RenameFile
	RefreshFile
	ImportFile
	ExportFile
	FileProperty
	Undo
	Redo
	Cut
	Copy
	Paste
	Delete
	GenerateUUID
	GotoLine
	Find
	NewQuery
	ConnectDB
	NewWindow
	About
	Exit
)

var kindNames = map[Kind]string{
	OpenFolder:     "open_folder",
	ToggleDarkMode: "toggle_dark_mode",
	NewFile:        "new_file",
	OpenFile:       "open_file",
	SaveFile:       "save_file",
	SaveAs:         "save_as",
	SaveAll:        "save_all",
	CloseFile:      "close_file",
	PrintFile:      "print_file",
	RenameFile:     "rename_file",
	RefreshFile:    "refresh_file",
	ImportFile:     "import_file",
	ExportFile:     "export_file",
	FileProperty:   "file_property",
	Undo:           "undo",
	Redo:           "redo",
	Cut:            "cut",
	Copy:           "copy",
	Paste:          "paste",
	Delete:         "delete",
	GenerateUUID:   "generate_uuid",
	GotoLine:       "goto_line",
	Find:           "find",
	NewQuery:       "new_query",
	ConnectDB:      "connect_db",
	NewWindow:      "new_window",
	About:          "about",
	Exit:           "exit",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// ID is a parsed action identifier. Raw is always the original string, so
// ids that menu data introduces before a handler exists survive the trip.
type ID struct {
	Kind Kind
	Raw  string
}

// Parse maps a string id onto its Kind, falling back to Unrecognized.
func Parse(raw string) ID {
	if k, ok := kindsByName[raw]; ok {
		return ID{Kind: k, Raw: raw}
	}
	return ID{Kind: Unrecognized, Raw: raw}
}

// Of returns the ID for a known kind.
func Of(k Kind) ID {
	return ID{Kind: k, Raw: kindNames[k]}
}

func (id ID) String() string { return id.Raw }

// Known reports whether id has a dedicated handler.
func (id ID) Known() bool { return id.Kind != Unrecognized }

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unrecognized"
}
