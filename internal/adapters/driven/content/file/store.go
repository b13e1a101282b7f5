package file

import (
	"context"
	"encoding/json"
	"fmt"
	"hash"
	"hash/fnv"
	"io/fs"
	"os"
	"sort"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/udl-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.ContentStore = (*Store)(nil)

const (
	coreDocument       = "udl-core.json"
	guidelinePattern   = "udl-guideline-*.json"
	activitiesDocument = "activities.json"
)

// Store reads the content corpus from a filesystem. The filesystem may
// be a real directory or an embedded one.
type Store struct {
	fsys fs.FS
}

// NewStore creates a store over a content directory.
func NewStore(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory %s: %w", dir, domain.ErrInvalidInput)
	}
	return &Store{fsys: os.DirFS(dir)}, nil
}

// NewStoreFS creates a store over an arbitrary filesystem, typically
// the embedded default dataset.
func NewStoreFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// rootDocument is the shape of udl-core.json.
type rootDocument struct {
	UDL struct {
		Networks []domain.Network `json:"networks"`
	} `json:"udl"`
}

// guidelineDocument is the shape of udl-guideline-N.json: examples
// grouped under their considerations.
type guidelineDocument struct {
	Considerations []struct {
		ID       string           `json:"id"`
		Examples []domain.Example `json:"examples"`
	} `json:"considerations"`
}

// activitiesDocumentShape is the shape of activities.json.
type activitiesDocumentShape struct {
	Activities []domain.Activity `json:"activities"`
}

// Load reads the full corpus. The version is a content hash over every
// document, so unchanged documents yield the same version across
// loads.
func (s *Store) Load(_ context.Context) (*domain.ContentSet, error) {
	hasher := fnv.New64a()

	set := &domain.ContentSet{}

	coreData, err := s.readDocument(coreDocument, hasher)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", coreDocument, err)
	}
	var root rootDocument
	if err := json.Unmarshal(coreData, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", coreDocument, err)
	}
	set.Networks = root.UDL.Networks

	names, err := fs.Glob(s.fsys, guidelinePattern)
	if err != nil {
		return nil, fmt.Errorf("listing guideline documents: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		data, err := s.readDocument(name, hasher)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var doc guidelineDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		for _, group := range doc.Considerations {
			set.Examples = append(set.Examples, group.Examples...)
		}
	}

	if data, err := s.readDocument(activitiesDocument, hasher); err == nil {
		var doc activitiesDocumentShape
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", activitiesDocument, err)
		}
		set.Activities = doc.Activities
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", activitiesDocument, err)
	}

	set.Version = fmt.Sprintf("%016x", hasher.Sum64())
	logger.Debug("Loaded corpus %s: %d networks, %d guideline docs, %d examples, %d activities",
		set.Version, len(set.Networks), len(names), len(set.Examples), len(set.Activities))

	return set, nil
}

// readDocument reads one document and folds it into the corpus hash.
func (s *Store) readDocument(name string, hasher hash.Hash64) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, err
	}
	_, _ = hasher.Write([]byte(name))
	_, _ = hasher.Write(data)
	return data, nil
}
