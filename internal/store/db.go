package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/justyntemme/canopy/internal/debug"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotConnected is returned by operations that need an open database.
var ErrNotConnected = errors.New("not connected to a database")

// Manager holds at most one embedded database connection.
type Manager struct {
	mu   sync.Mutex
	conn *sql.DB
	path string
}

func NewManager() *Manager {
	return &Manager{}
}

// Connect opens the database at dbPath, creating the file and its directory
// if needed. An existing connection is closed first.
func (m *Manager) Connect(dbPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		m.closeUnlocked()
	}

	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}
	// WAL lets readers run alongside a writer; NORMAL sync is safe against app crashes
	for _, pragma := range []string{"PRAGMA journal_mode=WAL;", "PRAGMA synchronous=NORMAL;"} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("connect %s: %w", dbPath, err)
		}
	}

	m.conn = db
	m.path = dbPath
	log.Printf("Store: connected to %s", dbPath)
	return nil
}

// Disconnect closes the connection, if any.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return
	}
	m.closeUnlocked()
	log.Printf("Store: disconnected")
}

func (m *Manager) closeUnlocked() {
	if err := m.conn.Close(); err != nil {
		log.Printf("Store Error: close %s: %v", m.path, err)
	}
	m.conn = nil
	m.path = ""
}

func (m *Manager) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn != nil
}

// Path returns the connected database file, or "" when disconnected.
func (m *Manager) Path() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

// Exec runs a statement that returns no rows.
func (m *Manager) Exec(query string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return ErrNotConnected
	}
	if _, err := m.conn.Exec(query); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	debug.Log(debug.STORE, "Exec: %s", query)
	return nil
}

// Tables lists the user tables, sorted by name.
func (m *Manager) Tables() ([]string, error) {
	_, rows, err := m.QueryTable("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name")
	if err != nil {
		return nil, err
	}
	tables := make([]string, len(rows))
	for i, r := range rows {
		tables[i] = r[0]
	}
	return tables, nil
}

// Query runs q and returns every row with each column rendered as text.
func (m *Manager) Query(q string) ([][]string, error) {
	_, rows, err := m.QueryTable(q)
	return rows, err
}

// QueryTable is Query plus the column names. NULL renders as "NULL".
func (m *Manager) QueryTable(q string) ([]string, [][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn == nil {
		return nil, nil, ErrNotConnected
	}

	rows, err := m.conn.Query(q)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("query columns: %w", err)
	}

	out := [][]string{}
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("query scan: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("query rows: %w", err)
	}
	debug.Log(debug.STORE, "Query: %d rows for %s", len(out), q)
	return cols, out, nil
}
