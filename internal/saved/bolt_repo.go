package saved

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"paperapi/internal/paper"

	"github.com/boltdb/bolt"
)

var (
	// papers keyed by big-endian insertion sequence
	paperBucket = []byte("saved_papers")
	// paper id -> key in paperBucket
	indexBucket = []byte("saved_papers_index")
)

// BoltRepo stores saved papers in a local bolt file, so they survive
// restarts without a database server.
type BoltRepo struct {
	store *bolt.DB
}

// OpenBoltRepo opens or creates the bolt file at path.
func OpenBoltRepo(path string) (*BoltRepo, error) {
	store, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store %s: %w", path, err)
	}

	err = store.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{paperBucket, indexBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &BoltRepo{store: store}, nil
}

// Close closes the underlying file.
func (r *BoltRepo) Close() error {
	return r.store.Close()
}

func (r *BoltRepo) List(ctx context.Context) ([]paper.Paper, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	papers := []paper.Paper{}
	err := r.store.View(func(tx *bolt.Tx) error {
		return tx.Bucket(paperBucket).ForEach(func(k, v []byte) error {
			var p paper.Paper
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("decode saved paper: %w", err)
			}
			papers = append(papers, p)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return papers, nil
}

func (r *BoltRepo) Add(ctx context.Context, p paper.Paper) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	data, err := json.Marshal(p)
	if err != nil {
		return false, fmt.Errorf("encode saved paper: %w", err)
	}

	added := false
	err = r.store.Update(func(tx *bolt.Tx) error {
		index := tx.Bucket(indexBucket)
		if index.Get([]byte(p.ID)) != nil {
			return nil
		}

		bucket := tx.Bucket(paperBucket)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		key := itob(seq)
		if err := bucket.Put(key, data); err != nil {
			return err
		}
		if err := index.Put([]byte(p.ID), key); err != nil {
			return err
		}
		added = true
		return nil
	})
	return added, err
}

func (r *BoltRepo) Remove(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store.Update(func(tx *bolt.Tx) error {
		index := tx.Bucket(indexBucket)
		key := index.Get([]byte(id))
		if key == nil {
			return paper.ErrNotFound
		}
		if err := tx.Bucket(paperBucket).Delete(key); err != nil {
			return err
		}
		return index.Delete([]byte(id))
	})
}

func (r *BoltRepo) Ping(ctx context.Context) error {
	return r.store.View(func(tx *bolt.Tx) error {
		if tx.Bucket(paperBucket) == nil {
			return errors.New("saved papers bucket missing")
		}
		return nil
	})
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
