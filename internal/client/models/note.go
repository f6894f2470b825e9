// Package models defines the wire types exchanged with the Pennwest
// Connect backend.
package models

// Note is a note summary as returned by the listing endpoints.
type Note struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	ClassName      string `json:"class_name"`
	Description    string `json:"description"`
	FilePath       string `json:"file_path"`
	AuthorEmail    string `json:"author_email"`
	AuthorUsername string `json:"author_username"`
	CreatedAt      string `json:"created_at"`
	LikeCount      int    `json:"like_count"`
	IsLiked        bool   `json:"is_liked"`
	CommentCount   int    `json:"comment_count"`
}

// Comment is one comment on a note.
type Comment struct {
	ID             int    `json:"id"`
	Content        string `json:"content"`
	AuthorEmail    string `json:"author_email"`
	AuthorUsername string `json:"author_username"`
	CreatedAt      string `json:"created_at"`
}

// NoteDetail is the full note record from the detail endpoint,
// including its comments.
type NoteDetail struct {
	Note
	Comments []Comment `json:"comments"`
}
