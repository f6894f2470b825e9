package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) show(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	n := a.resolveNote(ctx, args, "Usage: show <id>")
	if n == nil {
		return
	}
	detail, err := a.notes.Detail(ctx, n.ID)
	if err != nil {
		a.report(err)
		return
	}

	fmt.Fprintln(a.out, titleStyle.Render(detail.Title))
	fmt.Fprintf(a.out, "Class: %s\n", detail.ClassName)
	fmt.Fprintf(a.out, "Author: %s\n", detail.AuthorUsername)
	fmt.Fprintf(a.out, "Posted: %s\n", detail.CreatedAt)
	fmt.Fprintf(a.out, "Likes: %d\n", detail.LikeCount)
	if detail.Description != "" {
		fmt.Fprintln(a.out, detail.Description)
	}
	if len(detail.Comments) == 0 {
		fmt.Fprintln(a.out, dimStyle.Render("No comments yet."))
		return
	}
	fmt.Fprintf(a.out, "Comments (%d):\n", len(detail.Comments))
	for _, c := range detail.Comments {
		fmt.Fprintf(a.out, "  %s: %s\n", c.AuthorUsername, c.Content)
	}
}

func (a *App) like(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	n := a.resolveNote(ctx, args, "Usage: like <id>")
	if n == nil {
		return
	}
	if err := a.notes.ToggleLike(ctx, n); err != nil {
		a.report(err)
		return
	}
	if n.IsLiked {
		fmt.Fprintf(a.out, "Liked %q (%d likes).\n", n.Title, n.LikeCount)
	} else {
		fmt.Fprintf(a.out, "Unliked %q (%d likes).\n", n.Title, n.LikeCount)
	}
}

func (a *App) comment(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	n := a.resolveNote(ctx, args, "Usage: comment <id>")
	if n == nil {
		return
	}
	content, err := GetSimpleText(a.reader, a.out, "Comment")
	if err != nil {
		return
	}
	if strings.TrimSpace(content) == "" {
		fmt.Fprintln(a.out, errorStyle.Render("Comment cannot be empty."))
		return
	}
	if err := a.notes.AddComment(ctx, n.ID, content); err != nil {
		a.report(err)
		return
	}
	n.CommentCount++
	fmt.Fprintln(a.out, okStyle.Render("Comment added."))
}

func (a *App) delete(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	n := a.resolveNote(ctx, args, "Usage: delete <id>")
	if n == nil {
		return
	}
	answer, err := GetSimpleText(a.reader, a.out, fmt.Sprintf("Delete %q? (y/N)", n.Title))
	if err != nil {
		return
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}
	if err := a.notes.Delete(ctx, n.ID); err != nil {
		a.report(err)
		return
	}
	a.dropFromList(n.ID)
	fmt.Fprintln(a.out, okStyle.Render("Note deleted."))
}

func (a *App) dropFromList(id int) {
	for i := range a.lastList {
		if a.lastList[i].ID == id {
			a.lastList = append(a.lastList[:i], a.lastList[i+1:]...)
			return
		}
	}
}
