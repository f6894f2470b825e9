package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
)

// NotesService covers note browsing and the small social operations:
// like, comment, delete.
type NotesService struct {
	client api.Client

	mu     sync.Mutex
	liking map[int]bool
}

func NewNotesService(client api.Client) *NotesService {
	return &NotesService{client: client, liking: make(map[int]bool)}
}

func (s *NotesService) List(ctx context.Context, scope api.NoteScope) ([]models.Note, error) {
	notes, err := s.client.ListNotes(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	return notes, nil
}

func (s *NotesService) Detail(ctx context.Context, id int) (*models.NoteDetail, error) {
	return s.client.NoteDetail(ctx, id)
}

// FilterNotes narrows a listing by class and a case-insensitive search
// term over title, description, class, and author.
func FilterNotes(notes []models.Note, class, search string) []models.Note {
	filtered := make([]models.Note, 0, len(notes))
	term := strings.ToLower(strings.TrimSpace(search))

	for _, n := range notes {
		if class != "" && n.ClassName != class {
			continue
		}
		if term != "" && !matchesTerm(n, term) {
			continue
		}
		filtered = append(filtered, n)
	}
	return filtered
}

func matchesTerm(n models.Note, term string) bool {
	for _, field := range []string{n.Title, n.Description, n.ClassName, n.AuthorUsername} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// ToggleLike flips the like state optimistically, then reconciles with
// the server's answer; on failure the optimistic change is rolled
// back. A second toggle on the same note while one is in flight is
// ignored.
func (s *NotesService) ToggleLike(ctx context.Context, note *models.Note) error {
	s.mu.Lock()
	if s.liking[note.ID] {
		s.mu.Unlock()
		return nil
	}
	s.liking[note.ID] = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.liking, note.ID)
		s.mu.Unlock()
	}()

	prevLiked, prevCount := note.IsLiked, note.LikeCount

	if prevLiked {
		note.IsLiked = false
		note.LikeCount = maxInt(0, prevCount-1)
	} else {
		note.IsLiked = true
		note.LikeCount = prevCount + 1
	}

	liked, err := s.client.ToggleLike(ctx, note.ID)
	if err != nil {
		note.IsLiked, note.LikeCount = prevLiked, prevCount
		return err
	}

	note.IsLiked = liked
	if liked {
		note.LikeCount = prevCount + 1
	} else {
		note.LikeCount = maxInt(0, prevCount-1)
	}
	return nil
}

// AddComment posts a trimmed, non-empty comment.
func (s *NotesService) AddComment(ctx context.Context, id int, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ValidationError("Comment cannot be empty")
	}
	return s.client.AddComment(ctx, id, content)
}

// Delete removes one of the user's own notes. The confirmation step
// lives with the caller; the backend enforces ownership.
func (s *NotesService) Delete(ctx context.Context, id int) error {
	return s.client.DeleteNote(ctx, id)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
