package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/common"
)

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: 1, Title: "Calculus Chapter 5", ClassName: "Math", AuthorUsername: "alice"},
		{ID: 2, Title: "Cell Biology", ClassName: "Science", Description: "mitosis notes", AuthorUsername: "bob"},
		{ID: 3, Title: "Essay outline", ClassName: "English", AuthorUsername: "carol"},
	}
}

func TestFilterNotesByClass(t *testing.T) {
	got := FilterNotes(sampleNotes(), "Math", "")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterNotesBySearchTerm(t *testing.T) {
	got := FilterNotes(sampleNotes(), "", "MITOSIS")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got = FilterNotes(sampleNotes(), "", "carol")
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestFilterNotesEmptyFiltersKeepAll(t *testing.T) {
	assert.Len(t, FilterNotes(sampleNotes(), "", ""), 3)
}

func TestToggleLikeOptimisticThenReconciled(t *testing.T) {
	note := &models.Note{ID: 7, LikeCount: 3, IsLiked: false}

	var midCallCount int
	var midCallLiked bool
	client := &fakeClient{
		likeFn: func(ctx context.Context, id int) (bool, error) {
			// observe the optimistic state before the server answers
			midCallCount = note.LikeCount
			midCallLiked = note.IsLiked
			return true, nil
		},
	}
	svc := NewNotesService(client)

	require.NoError(t, svc.ToggleLike(context.Background(), note))

	assert.Equal(t, 4, midCallCount, "optimistic bump must precede the round-trip")
	assert.True(t, midCallLiked)
	assert.Equal(t, 4, note.LikeCount)
	assert.True(t, note.IsLiked)
}

func TestToggleLikeReconcilesToServerAnswer(t *testing.T) {
	// server says not liked even though the client flipped to liked
	note := &models.Note{ID: 7, LikeCount: 3, IsLiked: false}
	client := &fakeClient{
		likeFn: func(ctx context.Context, id int) (bool, error) { return false, nil },
	}
	svc := NewNotesService(client)

	require.NoError(t, svc.ToggleLike(context.Background(), note))
	assert.False(t, note.IsLiked)
	assert.Equal(t, 2, note.LikeCount)
}

func TestToggleLikeRevertsOnError(t *testing.T) {
	note := &models.Note{ID: 7, LikeCount: 3, IsLiked: false}
	client := &fakeClient{
		likeFn: func(ctx context.Context, id int) (bool, error) { return false, common.ErrUnavailable },
	}
	svc := NewNotesService(client)

	err := svc.ToggleLike(context.Background(), note)
	require.Error(t, err)
	assert.False(t, note.IsLiked)
	assert.Equal(t, 3, note.LikeCount)
}

func TestToggleLikeUnlikeFloorsAtZero(t *testing.T) {
	note := &models.Note{ID: 7, LikeCount: 0, IsLiked: true}
	client := &fakeClient{
		likeFn: func(ctx context.Context, id int) (bool, error) { return false, nil },
	}
	svc := NewNotesService(client)

	require.NoError(t, svc.ToggleLike(context.Background(), note))
	assert.Equal(t, 0, note.LikeCount)
}

func TestToggleLikeSuppressesConcurrentSameNote(t *testing.T) {
	note := &models.Note{ID: 7, LikeCount: 3}
	entered := make(chan struct{})
	unblock := make(chan struct{})
	calls := 0
	client := &fakeClient{
		likeFn: func(ctx context.Context, id int) (bool, error) {
			calls++
			close(entered)
			<-unblock
			return true, nil
		},
	}
	svc := NewNotesService(client)

	done := make(chan error, 1)
	go func() { done <- svc.ToggleLike(context.Background(), note) }()
	<-entered

	// second toggle while the first is in flight is a no-op
	require.NoError(t, svc.ToggleLike(context.Background(), note))
	assert.Equal(t, 1, calls)

	close(unblock)
	require.NoError(t, <-done)
}

func TestAddCommentRejectsEmpty(t *testing.T) {
	svc := NewNotesService(&fakeClient{})

	err := svc.AddComment(context.Background(), 1, "   ")
	require.Error(t, err)
	assert.IsType(t, ValidationError(""), err)
}

func TestAddCommentTrims(t *testing.T) {
	var got string
	client := &fakeClient{
		commentFn: func(ctx context.Context, id int, content string) error {
			got = content
			return nil
		},
	}
	svc := NewNotesService(client)

	require.NoError(t, svc.AddComment(context.Background(), 1, "  nice notes  "))
	assert.Equal(t, "nice notes", got)
}

func TestDetailPropagatesNotFound(t *testing.T) {
	client := &fakeClient{
		detailFn: func(ctx context.Context, id int) (*models.NoteDetail, error) {
			return nil, &api.StatusError{StatusCode: 404, Detail: api.Detail{Kind: api.DetailString, Str: "Note not found"}}
		},
	}
	svc := NewNotesService(client)

	_, err := svc.Detail(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
