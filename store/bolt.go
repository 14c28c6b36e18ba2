package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/sessionlog/internal/osutil"
)

const sessionBucket = "sessions"

// Bolt keeps the log in a BoltDB database with one key per day. The database
// file is locked while open, so only one process can track sessions against
// it.
type Bolt struct {
	db   *bolt.DB
	path string
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning.Fmt(pathToDB)
		}

		return nil, err
	}

	return db, nil
}

// OpenBolt opens the database at path, creating it if needed.
func OpenBolt(path string) (*Bolt, error) {
	err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Bolt{
		db:   db,
		path: path,
	}, nil
}

func (b *Bolt) Path() string {
	return b.path
}

func (b *Bolt) Load() (Log, error) {
	l := Log{}

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).ForEach(func(k, v []byte) error {
			var records []Record

			err := json.Unmarshal(v, &records)
			if err != nil {
				return ErrCorruptStore.Fmt(b.path).Wrap(err)
			}

			l[string(k)] = records

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return l, nil
}

// Save replaces the contents of the database with l in a single
// transaction.
func (b *Bolt) Save(l Log) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(sessionBucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		bucket, err := tx.CreateBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		for key, records := range l {
			v, err := json.Marshal(records)
			if err != nil {
				return err
			}

			err = bucket.Put([]byte(key), v)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Import copies the days found in src that the database does not have yet.
// It is used to carry an existing JSON log over when switching backends, and
// reports the number of days imported.
func (b *Bolt) Import(src Backend) (int, error) {
	l, err := src.Load()
	if err != nil {
		return 0, err
	}

	var imported int

	err = b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))

		for key, records := range l {
			if bucket.Get([]byte(key)) != nil {
				continue
			}

			v, err := json.Marshal(records)
			if err != nil {
				return err
			}

			err = bucket.Put([]byte(key), v)
			if err != nil {
				return err
			}

			imported++
		}

		return nil
	})

	return imported, err
}

func (b *Bolt) Close() error {
	return b.db.Close()
}
