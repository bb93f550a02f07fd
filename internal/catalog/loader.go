package catalog

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/public/domain"
	"github.com/edurank-nepal/api/internal/ranking"
)

// Loader builds the institution list from the schools.json file and the
// built-in catalog.
type Loader struct {
	path     string
	logger   *zap.Logger
	readFile func(string) ([]byte, error)
}

// NewLoader creates a loader for the given file. An empty path serves the
// built-in catalog only.
func NewLoader(path string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{path: path, logger: logger, readFile: os.ReadFile}
}

// Path returns the watched catalog file.
func (l *Loader) Path() string {
	return l.path
}

// Load never fails: any problem with the file is logged and the built-in
// catalog is returned instead.
func (l *Loader) Load(ctx context.Context) []domain.Institution {
	list, err := l.LoadFile(ctx)
	if err != nil {
		l.logger.Warn("dynamic catalog unavailable, serving built-in catalog",
			zap.String("path", l.path),
			zap.Error(err))
		return Static()
	}
	return list
}

// LoadFile parses the file and merges its schools with the non-school
// records of the built-in catalog, ordered by EduRank score.
func (l *Loader) LoadFile(ctx context.Context) ([]domain.Institution, error) {
	if l.path == "" {
		return nil, fmt.Errorf("catalog file not configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := l.readFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	parsed, err := ParseRows(data)
	if err != nil {
		return nil, err
	}

	merged := Merge(parsed, Static())
	l.logger.Info("catalog loaded",
		zap.String("path", l.path),
		zap.Int("parsed", len(parsed)),
		zap.Int("total", len(merged)))
	return merged, nil
}

// Merge combines parsed schools with every non-SCHOOL record from static,
// renaming parsed slugs that clash, and sorts by EduRank score.
func Merge(parsed, static []domain.Institution) []domain.Institution {
	merged := make([]domain.Institution, 0, len(parsed)+len(static))
	seen := make(map[string]int, len(parsed)+len(static))
	others := make([]domain.Institution, 0, len(static))
	for _, inst := range static {
		if inst.Type == domain.TypeSchool {
			continue
		}
		seen[inst.Slug]++
		others = append(others, inst)
	}
	for _, inst := range parsed {
		inst.Slug = uniqueSlug(inst.Slug, seen)
		merged = append(merged, inst)
	}
	merged = append(merged, others...)
	ranking.SortByEduRank(merged)
	return merged
}
