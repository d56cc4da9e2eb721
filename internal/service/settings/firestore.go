package settings

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const settingsCollection = "settings"

// firestoreSetting maps to the Firestore document structure.
type firestoreSetting struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// FirestoreStore keeps one document per setting key.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Get reads a setting document.
func (s *FirestoreStore) Get(ctx context.Context, key string) (*Entry, error) {
	doc, err := s.client.Collection(settingsCollection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fs firestoreSetting
	if err := doc.DataTo(&fs); err != nil {
		return nil, err
	}
	return &Entry{Key: key, Value: fs.Value, UpdatedAt: fs.UpdatedAt}, nil
}

// Set writes the setting document.
func (s *FirestoreStore) Set(ctx context.Context, key, value string) (*Entry, error) {
	docRef := s.client.Collection(settingsCollection).Doc(key)
	fs := firestoreSetting{Value: value, UpdatedAt: time.Now().UTC()}

	err := s.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return tx.Set(docRef, fs)
	})
	if err != nil {
		return nil, err
	}
	return &Entry{Key: key, Value: fs.Value, UpdatedAt: fs.UpdatedAt}, nil
}

// Close is a no-op: the Firestore client belongs to the caller.
func (s *FirestoreStore) Close() error {
	return nil
}

// Compile-time interface check
var _ Store = (*FirestoreStore)(nil)
