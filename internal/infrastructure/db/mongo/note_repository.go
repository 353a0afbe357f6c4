package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/notably/notes-api/internal/core/domain"
)

const notesCollection = "notes"

// MongoNoteRepository implements ports.NoteRepository. Every query filters
// by owner_id, so a foreign note and a missing note are indistinguishable.
type MongoNoteRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *MongoNoteRepository {
	return &MongoNoteRepository{db: db, coll: db.Collection(notesCollection)}
}

type mongoNote struct {
	ID        int64     `bson:"_id"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	OwnerID   int64     `bson:"owner_id"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (mn mongoNote) toDomain() *domain.Note {
	return &domain.Note{
		ID:        mn.ID,
		Title:     mn.Title,
		Content:   mn.Content,
		OwnerID:   mn.OwnerID,
		CreatedAt: mn.CreatedAt,
		UpdatedAt: mn.UpdatedAt,
	}
}

// ListByOwner returns the owner's notes in natural storage order; no sort
// is applied.
func (r *MongoNoteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer cur.Close(ctx)

	notes := make([]*domain.Note, 0)
	for cur.Next(ctx) {
		var mn mongoNote
		if err := cur.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, mn.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

func (r *MongoNoteRepository) FindByID(ctx context.Context, noteID, ownerID int64) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNote
	err := r.coll.FindOne(ctx, bson.M{"_id": noteID, "owner_id": ownerID}).Decode(&mn)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return mn.toDomain(), nil
}

func (r *MongoNoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, notesCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoNote{
		ID:        id,
		Title:     note.Title,
		Content:   note.Content,
		OwnerID:   note.OwnerID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	created := *note
	created.ID = id
	return &created, nil
}

// Update performs a single conditional write keyed on both note id and
// owner id. Zero matched documents means the note is missing or foreign.
func (r *MongoNoteRepository) Update(ctx context.Context, noteID, ownerID int64, title, content string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": noteID, "owner_id": ownerID},
		bson.M{"$set": bson.M{
			"title":      title,
			"content":    content,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

func (r *MongoNoteRepository) Delete(ctx context.Context, noteID, ownerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": noteID, "owner_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// EnsureIndexes creates the owner_id index used by every scoped query.
func (r *MongoNoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
