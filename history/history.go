package history

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var (
	ErrClosed = errors.New("history closed")
	ErrSize   = errors.New("invalid history size")
)

var bucket = []byte("history")

// Store keeps the lines entered in the REPL. Entries are ordered by the
// sequence of their bucket so that the oldest ones can be dropped first.
type Store struct {
	db   *bbolt.DB
	size int
}

func Open(file string, size int) (*Store, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%d: %w", size, ErrSize)
	}
	db, err := bbolt.Open(file, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	s := Store{
		db:   db,
		size: size,
	}
	return &s, nil
}

// Append stores line unless it is empty or equals the last stored line.
func (s *Store) Append(line string) error {
	if s.db == nil {
		return ErrClosed
	}
	if line == "" {
		return nil
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucket)
		if _, last := b.Cursor().Last(); string(last) == line {
			return nil
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(itob(seq), []byte(line)); err != nil {
			return err
		}
		return s.trim(b)
	})
}

func (s *Store) Lines() ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var list []string
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(_, v []byte) error {
			list = append(list, string(v))
			return nil
		})
	})
	return list, err
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) trim(b *bbolt.Bucket) error {
	var (
		count int
		c     = b.Cursor()
	)
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		count++
	}
	extra := count - s.size
	if extra <= 0 {
		return nil
	}
	var keys [][]byte
	for k, _ := c.First(); k != nil && len(keys) < extra; k, _ = c.Next() {
		keys = append(keys, append([]byte(nil), k...))
	}
	for _, k := range keys {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
