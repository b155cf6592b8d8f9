// Package memstore is an in-process database.Store for tests. It supports
// equality filters and $set updates only.
package memstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"lustrio/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Option func(*Store)

// WithUnique rejects a second document with the same value for field.
func WithUnique(collection, field string) Option {
	return func(s *Store) {
		s.unique[collection] = append(s.unique[collection], field)
	}
}

type Store struct {
	mu      sync.Mutex
	colls   map[string][]bson.M
	unique  map[string][]string
	failure error
}

var _ database.Store = (*Store)(nil)

func New(opts ...Option) *Store {
	s := &Store{
		colls:  make(map[string][]bson.M),
		unique: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fail makes every following call return err wrapped as ErrStoreUnavailable.
// Pass nil to recover.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// Len returns the number of documents in collection.
func (s *Store) Len(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.colls[collection])
}

func (s *Store) checkFailure(op, collection string) error {
	if s.failure != nil {
		return fmt.Errorf("%s %s: %w: %w", op, collection, database.ErrStoreUnavailable, s.failure)
	}
	return nil
}

func (s *Store) Find(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFailure("find", collection); err != nil {
		return err
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("memstore: find target must be a pointer to a slice, got %T", out)
	}
	want, err := normalize(filter)
	if err != nil {
		return err
	}

	slice := reflect.MakeSlice(rv.Elem().Type(), 0, len(s.colls[collection]))
	elemType := rv.Elem().Type().Elem()
	for _, doc := range s.colls[collection] {
		if !matches(doc, want) {
			continue
		}
		elem := reflect.New(elemType)
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	rv.Elem().Set(slice)
	return nil
}

func (s *Store) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFailure("findOne", collection); err != nil {
		return err
	}

	want, err := normalize(filter)
	if err != nil {
		return err
	}
	if i := s.indexOf(collection, want); i >= 0 {
		return decode(s.colls[collection][i], out)
	}
	return fmt.Errorf("findOne %s: %w", collection, database.ErrNotFound)
}

func (s *Store) InsertOne(ctx context.Context, collection string, doc interface{}) (database.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFailure("insertOne", collection); err != nil {
		return database.InsertResult{}, err
	}

	m, err := normalize(doc)
	if err != nil {
		return database.InsertResult{}, err
	}
	if _, ok := m["_id"]; !ok {
		m["_id"] = primitive.NewObjectID()
	}
	if err := s.checkUnique(collection, m, -1); err != nil {
		return database.InsertResult{}, err
	}
	s.colls[collection] = append(s.colls[collection], m)
	return database.InsertResult{Acknowledged: true, InsertedID: m["_id"]}, nil
}

func (s *Store) UpdateOne(ctx context.Context, collection string, filter, update bson.M, upsert bool) (database.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFailure("updateOne", collection); err != nil {
		return database.UpdateResult{}, err
	}

	want, err := normalize(filter)
	if err != nil {
		return database.UpdateResult{}, err
	}
	set, err := setFields(update)
	if err != nil {
		return database.UpdateResult{}, err
	}

	if i := s.indexOf(collection, want); i >= 0 {
		doc := s.colls[collection][i]
		next := bson.M{}
		modified := false
		for k, v := range doc {
			next[k] = v
		}
		for k, v := range set {
			if !reflect.DeepEqual(next[k], v) {
				modified = true
			}
			next[k] = v
		}
		if err := s.checkUnique(collection, next, i); err != nil {
			return database.UpdateResult{}, err
		}
		res := database.UpdateResult{Acknowledged: true, MatchedCount: 1}
		if modified {
			s.colls[collection][i] = next
			res.ModifiedCount = 1
		}
		return res, nil
	}

	if !upsert {
		return database.UpdateResult{Acknowledged: true}, nil
	}
	doc := bson.M{}
	for k, v := range want {
		doc[k] = v
	}
	for k, v := range set {
		doc[k] = v
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	if err := s.checkUnique(collection, doc, -1); err != nil {
		return database.UpdateResult{}, err
	}
	s.colls[collection] = append(s.colls[collection], doc)
	return database.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: doc["_id"]}, nil
}

func (s *Store) DeleteOne(ctx context.Context, collection string, filter bson.M) (database.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkFailure("deleteOne", collection); err != nil {
		return database.DeleteResult{}, err
	}

	want, err := normalize(filter)
	if err != nil {
		return database.DeleteResult{}, err
	}
	i := s.indexOf(collection, want)
	if i < 0 {
		return database.DeleteResult{Acknowledged: true}, nil
	}
	docs := s.colls[collection]
	s.colls[collection] = append(docs[:i:i], docs[i+1:]...)
	return database.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (s *Store) indexOf(collection string, want bson.M) int {
	for i, doc := range s.colls[collection] {
		if matches(doc, want) {
			return i
		}
	}
	return -1
}

func (s *Store) checkUnique(collection string, doc bson.M, self int) error {
	for _, field := range s.unique[collection] {
		v, ok := doc[field]
		if !ok {
			continue
		}
		for i, other := range s.colls[collection] {
			if i != self && reflect.DeepEqual(other[field], v) {
				return fmt.Errorf("%s.%s %v: %w", collection, field, v, database.ErrDuplicate)
			}
		}
	}
	return nil
}

func matches(doc, want bson.M) bool {
	for k, v := range want {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

// normalize round-trips v through BSON so stored values and filter values
// share the same Go types.
func normalize(v interface{}) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("memstore: marshal: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("memstore: unmarshal: %w", err)
	}
	return m, nil
}

func setFields(update bson.M) (bson.M, error) {
	for op := range update {
		if op != "$set" {
			return nil, fmt.Errorf("memstore: unsupported update operator %q", op)
		}
	}
	return normalize(update["$set"])
}

func decode(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("memstore: marshal: %w", err)
	}
	return bson.Unmarshal(raw, out)
}
