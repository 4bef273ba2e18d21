package corpus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/staffsearch/core"
)

// Store loads the authoritative employee corpus from a JSON file.
// The file holds a single object with the employee list under the
// "employees" key. Loading is fail-fast: one invalid record invalidates
// the whole load and no partial corpus is ever returned.
type Store struct {
	path   string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates a store reading from the given file path.
func NewStore(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, ErrPathRequired
	}

	s := &Store{
		path:   path,
		logger: slog.Default().With("component", "corpus"),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// document mirrors the on-disk shape of the corpus file.
type document struct {
	Employees []core.EmployeeRecord `json:"employees"`
}

// Load reads and validates the full corpus.
//
// Any failure (missing file, malformed JSON, empty employee list,
// an invalid record, a duplicate ID) wraps ErrDataSource and returns
// no records.
func (s *Store) Load() ([]core.EmployeeRecord, error) {
	s.logger.Info("loading employee corpus", "path", s.path)

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrDataSource, s.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrDataSource, s.path, err)
	}

	if len(doc.Employees) == 0 {
		return nil, fmt.Errorf("%w: no employee records in %s", ErrDataSource, s.path)
	}

	seen := make(map[core.RecordID]bool, len(doc.Employees))
	for i := range doc.Employees {
		record := &doc.Employees[i]

		// Availability values arrive in mixed case from hand-edited files.
		record.Availability = core.Availability(strings.ToLower(strings.TrimSpace(string(record.Availability))))

		if err := core.ValidateEmployeeRecord(record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataSource, err)
		}
		if seen[record.ID] {
			return nil, fmt.Errorf("%w: duplicate record ID %d", ErrDataSource, record.ID)
		}
		seen[record.ID] = true
	}

	s.logger.Info("loaded employee corpus", "records", len(doc.Employees))
	return doc.Employees, nil
}
