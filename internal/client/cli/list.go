package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/services"
)

func (a *App) list(ctx context.Context, args []string) {
	scope := api.ScopeGlobal
	if len(args) > 0 {
		switch args[0] {
		case "mine":
			scope = api.ScopeMine
		case "recent":
			scope = api.ScopeRecent
		case "all", "global":
			scope = api.ScopeGlobal
		default:
			fmt.Fprintln(a.out, "Usage: list [mine|recent]")
			return
		}
	}
	if scope != api.ScopeRecent && !a.requireLogin() {
		return
	}

	notes, err := a.notes.List(ctx, scope)
	if err != nil {
		a.report(err)
		return
	}
	a.lastList = notes
	a.printNotes(notes)
}

func (a *App) search(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: search [class:<name>] <term>")
		return
	}

	var class string
	var terms []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "class:") {
			class = strings.TrimPrefix(arg, "class:")
			continue
		}
		terms = append(terms, arg)
	}

	notes, err := a.notes.List(ctx, api.ScopeGlobal)
	if err != nil {
		a.report(err)
		return
	}
	matched := services.FilterNotes(notes, class, strings.Join(terms, " "))
	a.lastList = matched
	a.printNotes(matched)
}

func (a *App) printNotes(notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(a.out, "No notes found.")
		return
	}
	for _, n := range notes {
		like := fmt.Sprintf("%d likes", n.LikeCount)
		if n.IsLiked {
			like = likedStyle.Render(like + " ♥")
		}
		fmt.Fprintf(a.out, "%4d  %s  %s\n", n.ID, titleStyle.Render(n.Title), dimStyle.Render(n.ClassName))
		fmt.Fprintf(a.out, "      by %s, %s, %d comments\n", n.AuthorUsername, like, n.CommentCount)
	}
}

// resolveNote maps a command's <id> argument to a note, preferring the
// cached listing so optimistic state stays visible, and falling back
// to a detail fetch for ids the user typed directly.
func (a *App) resolveNote(ctx context.Context, args []string, usage string) *models.Note {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return nil
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, usage)
		return nil
	}
	for i := range a.lastList {
		if a.lastList[i].ID == id {
			return &a.lastList[i]
		}
	}
	detail, err := a.notes.Detail(ctx, id)
	if err != nil {
		a.report(err)
		return nil
	}
	return &detail.Note
}
