// Package bookstore is a concrete book.LookupService backed by BadgerDB,
// an embedded key-value store. Grounded on
// hailam-chessplay/internal/storage/storage.go's Storage type: the same
// badger.DefaultOptions/db.View/db.Update/json.Marshal shape, re-keyed
// from user-preferences/game-stats records to (canonical position, side,
// difficulty) -> weighted candidate moves, and the weighted-random pick
// re-grounded on blunext-chess/book/polyglot.go's ProbeRandom.
package bookstore

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/dgraph-io/badger/v4"

	"carocore/board"
	"carocore/book"
)

// WeightedMove is one candidate reply stored for a position, with a
// relative selection weight (spec.md leaves the store's internal move
// representation unspecified; this mirrors Polyglot's Weight field).
type WeightedMove struct {
	X, Y   int
	Weight int
}

// entry is the JSON record stored per key.
type entry struct {
	Moves []WeightedMove `json:"moves"`
}

// Store is a BadgerDB-backed book.LookupService.
type Store struct {
	db  *badger.DB
	rng *rand.Rand
}

// Open opens (creating if absent) a Badger database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("bookstore: open %s: %w", dir, err)
	}
	return &Store{db: db, rng: rand.New(rand.NewSource(1))}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func difficultyKey(d book.Difficulty) string {
	switch {
	case d.IsGrandmaster():
		return "grandmaster"
	case d.IsHard():
		return "hard"
	case d.IsExperimental():
		return "experimental"
	default:
		return "other"
	}
}

func storageKey(canonicalPosition uint64, side board.Side, d book.Difficulty) []byte {
	return []byte(fmt.Sprintf("%016x:%s:%s", canonicalPosition, side, difficultyKey(d)))
}

// Put seeds (or overwrites) the weighted move list for a position, used to
// load a precomputed book rather than build one at runtime.
func (s *Store) Put(canonicalPosition uint64, side board.Side, d book.Difficulty, moves []WeightedMove) error {
	data, err := json.Marshal(entry{Moves: moves})
	if err != nil {
		return err
	}
	key := storageKey(canonicalPosition, side, d)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// GetMove implements book.LookupService: a weighted-random pick among the
// stored candidates for this key, or (zero, false) on a miss.
func (s *Store) GetMove(canonicalPosition uint64, side board.Side, d book.Difficulty) (board.Move, bool) {
	key := storageKey(canonicalPosition, side, d)

	var e entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	if err != nil || len(e.Moves) == 0 {
		return board.Move{}, false
	}

	totalWeight := 0
	for _, m := range e.Moves {
		totalWeight += m.Weight
	}
	if totalWeight <= 0 {
		first := e.Moves[0]
		return board.Move{X: first.X, Y: first.Y, Side: side}, true
	}

	pick := s.rng.Intn(totalWeight)
	cumulative := 0
	for _, m := range e.Moves {
		cumulative += m.Weight
		if pick < cumulative {
			return board.Move{X: m.X, Y: m.Y, Side: side}, true
		}
	}
	last := e.Moves[len(e.Moves)-1]
	return board.Move{X: last.X, Y: last.Y, Side: side}, true
}

// GetStatistics reports how many distinct keys and total candidate moves
// the store holds, by scanning all keys. Intended for offline tooling, not
// the hot search path.
func (s *Store) GetStatistics() book.Statistics {
	stats := book.Statistics{}
	s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			stats.TotalPositions++
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var e entry
				if err := json.Unmarshal(val, &e); err != nil {
					return err
				}
				stats.TotalMoves += len(e.Moves)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return stats
}
