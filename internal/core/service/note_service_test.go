package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/notably/notes-api/internal/core/domain"
	"github.com/notably/notes-api/internal/core/ports"
)

// stubNoteRepo keeps notes in insertion order and applies the same
// ownership-gated matching as the real repository.
type stubNoteRepo struct {
	mu     sync.Mutex
	notes  []*domain.Note
	nextID int64
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{}
}

func (r *stubNoteRepo) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Note, 0)
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubNoteRepo) FindByID(_ context.Context, noteID, ownerID int64) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notes {
		if n.ID == noteID && n.OwnerID == ownerID {
			clone := *n
			return &clone, nil
		}
	}
	return nil, domain.ErrNoteNotFound
}

func (r *stubNoteRepo) Create(_ context.Context, note *domain.Note) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	stored := *note
	stored.ID = r.nextID
	r.notes = append(r.notes, &stored)
	clone := stored
	return &clone, nil
}

func (r *stubNoteRepo) Update(_ context.Context, noteID, ownerID int64, title, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notes {
		if n.ID == noteID && n.OwnerID == ownerID {
			n.Title = title
			n.Content = content
			return nil
		}
	}
	return domain.ErrNoteNotFound
}

func (r *stubNoteRepo) Delete(_ context.Context, noteID, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.notes {
		if n.ID == noteID && n.OwnerID == ownerID {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNoteNotFound
}

type stubIdemStore struct {
	mu        sync.Mutex
	seen      map[string]int64
	lookupErr error
}

func newStubIdemStore() *stubIdemStore {
	return &stubIdemStore{seen: make(map[string]int64)}
}

func (s *stubIdemStore) Lookup(_ context.Context, ownerID int64, key string) (int64, bool, error) {
	if s.lookupErr != nil {
		return 0, false, s.lookupErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.seen[fmt.Sprintf("%d:%s", ownerID, key)]
	return id, ok, nil
}

func (s *stubIdemStore) Remember(_ context.Context, ownerID int64, key string, noteID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[fmt.Sprintf("%d:%s", ownerID, key)] = noteID
	return nil
}

// seedUsers registers alice and bob directly in the stub credential store.
func seedUsers(t *testing.T, users *stubUserRepo) (alice, bob *domain.User) {
	t.Helper()
	var err error
	alice, err = users.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("seed alice: %v", err)
	}
	bob, err = users.Create(context.Background(), &domain.User{Username: "bob", PasswordHash: "x"})
	if err != nil {
		t.Fatalf("seed bob: %v", err)
	}
	return alice, bob
}

func newNoteSvc(users *stubUserRepo, notes *stubNoteRepo, idem IdempotencyStore) *NoteService {
	return NewNoteService(users, notes, idem, nil, zerolog.Nop())
}

func TestNoteService_CreateListRoundTrip(t *testing.T) {
	users, notes := newStubUserRepo(), newStubNoteRepo()
	seedUsers(t, users)
	svc := newNoteSvc(users, notes, nil)

	created, err := svc.Create(context.Background(), ports.CreateNoteInput{Username: "alice", Title: "T", Content: "C"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	list, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one note, got %d", len(list))
	}
	if list[0].Title != "T" || list[0].Content != "C" {
		t.Fatalf("unexpected note: %+v", list[0])
	}
	if list[0].OwnerID != created.OwnerID {
		t.Fatalf("note not owned by caller")
	}
}

func TestNoteService_ListIsolation(t *testing.T) {
	users, notes := newStubUserRepo(), newStubNoteRepo()
	alice, bob := seedUsers(t, users)
	svc := newNoteSvc(users, notes, nil)

	for _, in := range []ports.CreateNoteInput{
		{Username: "alice", Title: "a1"},
		{Username: "bob", Title: "b1"},
		{Username: "alice", Title: "a2"},
		{Username: "bob", Title: "b2"},
	} {
		if _, err := svc.Create(context.Background(), in); err != nil {
			t.Fatalf("seed note %q: %v", in.Title, err)
		}
	}

	aliceNotes, err := svc.List(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list alice: %v", err)
	}
	if len(aliceNotes) != 2 {
		t.Fatalf("expected 2 notes for alice, got %d", len(aliceNotes))
	}
	for _, n := range aliceNotes {
		if n.OwnerID == bob.ID {
			t.Fatalf("alice's list contains bob's note %d", n.ID)
		}
		if n.OwnerID != alice.ID {
			t.Fatalf("unexpected owner %d on note %d", n.OwnerID, n.ID)
		}
	}
}

func TestNoteService_UpdateForeignNote(t *testing.T) {
	users, notes := newStubUserRepo(), newStubNoteRepo()
	seedUsers(t, users)
	svc := newNoteSvc(users, notes, nil)

	bobNote, err := svc.Create(context.Background(), ports.CreateNoteInput{Username: "bob", Title: "bob's", Content: "original"})
	if err != nil {
		t.Fatalf("seed bob note: %v", err)
	}

	err = svc.Update(context.Background(), "alice", bobNote.ID, "stolen", "overwritten")
	if !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}

	// Target must be unmodified.
	list, err := svc.List(context.Background(), "bob")
	if err != nil {
		t.Fatalf("list bob: %v", err)
	}
	if list[0].Title != "bob's" || list[0].Content != "original" {
		t.Fatalf("foreign update mutated the note: %+v", list[0])
	}
}

func TestNoteService_DeleteForeignNote(t *testing.T) {
	users, notes := newStubUserRepo(), newStubNoteRepo()
	seedUsers(t, users)
	svc := newNoteSvc(users, notes, nil)

	bobNote, err := svc.Create(context.Background(), ports.CreateNoteInput{Username: "bob", Title: "keep me"})
	if err != nil {
		t.Fatalf("seed bob note: %v", err)
	}

	if err := svc.Delete(context.Background(), "alice", bobNote.ID); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}

	list, err := svc.List(context.Background(), "bob")
	if err != nil {
		t.Fatalf("list bob: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("foreign delete removed the note")
	}
}

func TestNoteService_UnknownIdentity(t *testing.T) {
	users, notes := newStubUserRepo(), newStubNoteRepo()
	svc := newNoteSvc(users, notes, nil)

	if _, err := svc.List(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateNoteInput{Username: "ghost", Title: "t"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestNoteService_IdempotentReplay(t *testing.T) {
	users, notes := newStubUserRepo(), newStubNoteRepo()
	seedUsers(t, users)
	svc := newNoteSvc(users, notes, newStubIdemStore())

	in := ports.CreateNoteInput{Username: "alice", Title: "once", Content: "only", IdempotencyKey: "k1"}

	first, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("replay create: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("replay created a new note: %d vs %d", first.ID, second.ID)
	}
	if len(notes.notes) != 1 {
		t.Fatalf("expected one stored note, got %d", len(notes.notes))
	}
}

func TestNoteService_IdempotencyStoreDown(t *testing.T) {
	users, notes := newStubUserRepo(), newStubNoteRepo()
	seedUsers(t, users)
	idem := newStubIdemStore()
	idem.lookupErr = errors.New("redis unavailable")
	svc := newNoteSvc(users, notes, idem)

	in := ports.CreateNoteInput{Username: "alice", Title: "t", IdempotencyKey: "k1"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("create with broken idempotency store: %v", err)
	}
}
