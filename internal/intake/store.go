package intake

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

// DefaultProfileName is the name of the lazily-created profile used when
// the caller doesn't manage multiple clients.
const DefaultProfileName = "default"

// --- Config ---

// StoreConfig holds intake store configuration.
type StoreConfig struct {
	DataDir string
}

// DefaultStoreConfig returns the default configuration for the intake store.
func DefaultStoreConfig() StoreConfig {
	home, _ := os.UserHomeDir()
	return StoreConfig{
		DataDir: filepath.Join(home, ".lodestar"),
	}
}

// --- Store ---

// Store persists intake profiles in SQLite. Sections are stored as JSON
// columns — they are written and read whole, never queried into, which
// keeps the schema stable while the section shapes evolve.
type Store struct {
	db  *sql.DB
	cfg StoreConfig
}

// NewStore opens (creating if needed) the intake database under the
// configured data directory.
func NewStore(cfg StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, fmt.Errorf("intake: create data dir: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, "intake.db")
	db, err := openDB("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("intake: open database: %w", err)
	}

	// SQLite performance pragmas
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return nil, fmt.Errorf("intake: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, cfg: cfg}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("intake: migration: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps this
// non-destructive across versions.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL UNIQUE,
			basics           TEXT,
			values_discovery TEXT,
			goals            TEXT,
			purpose          TEXT,
			created_at       TEXT NOT NULL,
			updated_at       TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_profiles_updated ON profiles(updated_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// --- Profile CRUD ---

// CreateProfile creates a new, empty profile with the given display name.
func (s *Store) CreateProfile(name string) (*Profile, error) {
	if name == "" {
		return nil, fmt.Errorf("intake: profile name is required")
	}
	now := time.Now().UTC()
	p := &Profile{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := s.db.Exec(
		`INSERT INTO profiles (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		p.ID, p.Name, now.Format(time.RFC3339), now.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("intake: create profile: %w", err)
	}
	return p, nil
}

// GetProfile loads a profile by id. Returns an error when the id is unknown.
func (s *Store) GetProfile(id string) (*Profile, error) {
	row := s.db.QueryRow(
		`SELECT id, name, basics, values_discovery, goals, purpose, created_at, updated_at
		 FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("intake: profile %q not found", id)
	}
	return p, err
}

// FindProfileByName loads a profile by its unique display name. Returns
// (nil, nil) when no profile has that name.
func (s *Store) FindProfileByName(name string) (*Profile, error) {
	row := s.db.QueryRow(
		`SELECT id, name, basics, values_discovery, goals, purpose, created_at, updated_at
		 FROM profiles WHERE name = ?`, name)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

// DefaultProfile returns the default profile, creating it on first use.
// The MCP tools use this when the caller doesn't name a profile.
func (s *Store) DefaultProfile() (*Profile, error) {
	p, err := s.FindProfileByName(DefaultProfileName)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	return s.CreateProfile(DefaultProfileName)
}

// ListProfiles returns profiles ordered by most recently updated.
func (s *Store) ListProfiles(limit int) ([]Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, name, basics, values_discovery, goals, purpose, created_at, updated_at
		 FROM profiles ORDER BY updated_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("intake: list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// DeleteProfile removes a profile and its sections.
func (s *Store) DeleteProfile(id string) error {
	res, err := s.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("intake: delete profile: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("intake: profile %q not found", id)
	}
	return nil
}

// --- Section savers ---

// SaveBasics replaces the basic-context section of a profile.
func (s *Store) SaveBasics(id string, b *BasicContext) error {
	return s.saveSection(id, "basics", b)
}

// SaveValues replaces the values-discovery section of a profile.
func (s *Store) SaveValues(id string, v *ValuesDiscovery) error {
	return s.saveSection(id, "values_discovery", v)
}

// SaveGoals replaces the financial-goals section of a profile.
func (s *Store) SaveGoals(id string, g *FinancialGoals) error {
	return s.saveSection(id, "goals", g)
}

// SavePurpose replaces the financial-purpose section of a profile.
func (s *Store) SavePurpose(id string, p *FinancialPurpose) error {
	return s.saveSection(id, "purpose", p)
}

// sectionColumns whitelists the updatable JSON columns. saveSection builds
// its query from this set only, never from caller input.
var sectionColumns = map[string]bool{
	"basics":           true,
	"values_discovery": true,
	"goals":            true,
	"purpose":          true,
}

// saveSection marshals a section and writes it to its column. Passing a
// typed nil clears the section.
func (s *Store) saveSection(id, column string, v any) error {
	if !sectionColumns[column] {
		return fmt.Errorf("intake: unknown section column %q", column)
	}

	var payload any
	if !isNilPointer(v) {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("intake: marshal %s: %w", column, err)
		}
		payload = string(data)
	}

	query := fmt.Sprintf(`UPDATE profiles SET %s = ?, updated_at = ? WHERE id = ?`, column)
	res, err := s.db.Exec(query, payload, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("intake: save %s: %w", column, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("intake: profile %q not found", id)
	}
	return nil
}

// isNilPointer reports whether v is a typed nil section pointer.
func isNilPointer(v any) bool {
	switch p := v.(type) {
	case *BasicContext:
		return p == nil
	case *ValuesDiscovery:
		return p == nil
	case *FinancialGoals:
		return p == nil
	case *FinancialPurpose:
		return p == nil
	}
	return v == nil
}

// --- Row scanning ---

// scanner abstracts *sql.Row and *sql.Rows for scanProfile.
type scanner interface {
	Scan(dest ...any) error
}

// scanProfile reads one profile row. Malformed section JSON is folded into
// an absent section rather than failing the load — the engine's contract is
// that bad optional data lowers confidence, it never errors.
func scanProfile(row scanner) (*Profile, error) {
	var (
		p                  Profile
		basics, values     sql.NullString
		goals, purpose     sql.NullString
		createdAt, updated string
	)
	if err := row.Scan(&p.ID, &p.Name, &basics, &values, &goals, &purpose, &createdAt, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("intake: scan profile: %w", err)
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updated)

	if basics.Valid {
		var b BasicContext
		if json.Unmarshal([]byte(basics.String), &b) == nil {
			p.Basics = &b
		}
	}
	if values.Valid {
		var v ValuesDiscovery
		if json.Unmarshal([]byte(values.String), &v) == nil {
			p.Values = &v
		}
	}
	if goals.Valid {
		var g FinancialGoals
		if json.Unmarshal([]byte(goals.String), &g) == nil {
			p.Goals = &g
		}
	}
	if purpose.Valid {
		var fp FinancialPurpose
		if json.Unmarshal([]byte(purpose.String), &fp) == nil {
			p.Purpose = &fp
		}
	}

	return &p, nil
}
