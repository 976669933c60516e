package store

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/brightcoat/showcase/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var stateBucket = []byte("state")

// persistWhitelist names the slices mirrored to durable storage. Products
// are deliberately absent; they reseed from defaults on every boot.
var persistWhitelist = map[string]bool{
	SliceProjects: true,
	SliceLeads:    true,
	SliceAdmin:    true,
}

// Persistence mirrors whitelisted store slices into a bbolt file. Each
// slice is one JSON snapshot under a fixed key.
type Persistence struct {
	db *bolt.DB
}

func OpenPersistence(path string) (*Persistence, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open state file")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create state bucket")
	}
	return &Persistence{db: db}, nil
}

func (p *Persistence) Close() error {
	return p.db.Close()
}

// SaveSlice serializes v and writes it under the slice key.
func (p *Persistence) SaveSlice(slice string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshal %s snapshot", slice)
	}
	err = p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(slice), data)
	})
	return errors.Wrapf(err, "write %s snapshot", slice)
}

// LoadSlice reads the slice key into v. A missing key returns (false, nil);
// a corrupt payload returns an error, which callers treat as "no prior
// state" rather than a fatal condition.
func (p *Persistence) LoadSlice(slice string, v interface{}) (bool, error) {
	var data []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(stateBucket).Get([]byte(slice))
		if raw != nil {
			data = append(data, raw...)
		}
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "read %s snapshot", slice)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, errors.Wrapf(err, "parse %s snapshot", slice)
	}
	return true, nil
}

// Reset drops every persisted slice.
func (p *Persistence) Reset() error {
	err := p.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(stateBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucket(stateBucket)
		return err
	})
	return errors.Wrap(err, "reset state")
}

// Attach subscribes the adapter to the store so every committed mutation of
// a whitelisted slice is mirrored immediately. Write failures are logged
// and absorbed; the in-memory state stays authoritative.
func (p *Persistence) Attach(s *Store) error {
	return s.Subscribe(func(slice string) {
		if !persistWhitelist[slice] {
			return
		}
		var err error
		switch slice {
		case SliceProjects:
			err = p.SaveSlice(slice, s.Projects())
		case SliceLeads:
			err = p.SaveSlice(slice, s.Leads())
		case SliceAdmin:
			err = p.SaveSlice(slice, s.AdminCredential())
		}
		if err != nil {
			zap.L().Error("persist slice failed", zap.String("slice", slice), zap.Error(err))
		}
	})
}

// Rehydrate fills the store from persisted snapshots, falling back to the
// seed data for any slice that is absent or unreadable.
func (p *Persistence) Rehydrate(s *Store) {
	var projects []domain.Project
	if found, err := p.LoadSlice(SliceProjects, &projects); err != nil {
		zap.L().Warn("projects snapshot unreadable, using defaults", zap.Error(err))
		s.ReplaceProjects(domain.DefaultProjects)
	} else if !found {
		s.ReplaceProjects(domain.DefaultProjects)
	} else {
		s.ReplaceProjects(projects)
	}

	var leads []domain.Lead
	if found, err := p.LoadSlice(SliceLeads, &leads); err != nil {
		zap.L().Warn("leads snapshot unreadable, starting empty", zap.Error(err))
		s.ReplaceLeads(nil)
	} else if !found {
		s.ReplaceLeads(nil)
	} else {
		s.ReplaceLeads(leads)
	}

	var cred domain.AdminCredential
	if found, err := p.LoadSlice(SliceAdmin, &cred); err != nil || !found || cred.Password == "" {
		if err != nil {
			zap.L().Warn("admin snapshot unreadable, using default password", zap.Error(err))
		}
		s.ReplaceAdminCredential(domain.AdminCredential{Password: domain.DefaultAdminPassword})
	} else {
		s.ReplaceAdminCredential(cred)
	}
}

// Snapshot returns the whitelisted slices as one JSON document, used by the
// periodic backup job.
func Snapshot(s *Store) ([]byte, error) {
	doc := map[string]interface{}{
		SliceProjects: s.Projects(),
		SliceLeads:    s.Leads(),
		SliceAdmin:    s.AdminCredential(),
	}
	return json.Marshal(doc)
}
