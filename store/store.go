package store

import (
	"errors"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/tbtrend/align"
	"github.com/bitmark-inc/tbtrend/consts"
	"github.com/bitmark-inc/tbtrend/dataset"
	"github.com/bitmark-inc/tbtrend/schema"
)

const logPrefix = "store"

var (
	ErrUnknownRegion   = errors.New("unknown region")
	ErrNoRegion        = errors.New("no region configured")
	ErrDuplicateRegion = errors.New("region configured twice")
)

//go:generate mockgen -destination=../api/mocks/mock_store.go -package=mocks github.com/bitmark-inc/tbtrend/store DatasetStore

// DatasetStore - the read-only registry of region datasets
type DatasetStore interface {
	Regions() []schema.Region
	Region(name string) (schema.Region, bool)
	DefaultRegion() schema.Region

	// Load reads both files of a region from disk. Every call returns a
	// fresh copy of the tables.
	Load(name string) (*schema.Tables, error)

	// Verify loads and aligns every region and returns the first failure.
	Verify() error
}

type fileStore struct {
	dir           string
	regions       []schema.Region
	index         map[string]int
	defaultRegion int
}

// NewFileStore returns a store reading region files relative to dir. Regions are
// addressable by display name or key.
func NewFileStore(dir string, regions []schema.Region, defaultRegion string) (DatasetStore, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegion
	}

	s := &fileStore{
		dir:     dir,
		regions: make([]schema.Region, len(regions)),
		index:   make(map[string]int, 2*len(regions)),
	}

	for i, r := range regions {
		if r.Key == "" {
			key, err := consts.RegionKey(r.Name)
			if err != nil {
				return nil, err
			}
			r.Key = key
		}

		for _, id := range []string{r.Name, r.Key} {
			if _, ok := s.index[id]; ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateRegion, id)
			}
			s.index[id] = i
		}
		s.regions[i] = r
	}

	if defaultRegion != "" {
		i, ok := s.index[defaultRegion]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, defaultRegion)
		}
		s.defaultRegion = i
	}

	return s, nil
}

func (s *fileStore) Regions() []schema.Region {
	regions := make([]schema.Region, len(s.regions))
	copy(regions, s.regions)
	return regions
}

func (s *fileStore) Region(name string) (schema.Region, bool) {
	i, ok := s.index[name]
	if !ok {
		return schema.Region{}, false
	}
	return s.regions[i], true
}

func (s *fileStore) DefaultRegion() schema.Region {
	return s.regions[s.defaultRegion]
}

func (s *fileStore) Load(name string) (*schema.Tables, error) {
	region, ok := s.Region(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegion, name)
	}

	incidence, err := dataset.LoadIncidence(s.path(region.Incidence))
	if err != nil {
		return nil, err
	}

	resistance, err := dataset.LoadResistance(s.path(region.Resistance))
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"prefix":     logPrefix,
		"region":     region.Name,
		"incidence":  len(incidence),
		"resistance": len(resistance),
	}).Debug("region loaded")

	return &schema.Tables{
		Region:     region.Name,
		Incidence:  incidence,
		Resistance: resistance,
	}, nil
}

func (s *fileStore) Verify() error {
	for _, r := range s.regions {
		tables, err := s.Load(r.Name)
		if err != nil {
			return fmt.Errorf("region %s: %w", r.Name, err)
		}
		if _, err := align.Align(tables.Incidence, tables.Resistance); err != nil {
			return fmt.Errorf("region %s: %w", r.Name, err)
		}
		log.WithFields(log.Fields{"prefix": logPrefix, "region": r.Name}).Info("region verified")
	}
	return nil
}

func (s *fileStore) path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(s.dir, file)
}
