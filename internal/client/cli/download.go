package cli

import (
	"context"
	"fmt"
)

func (a *App) download(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	n := a.resolveNote(ctx, args, "Usage: download <id>")
	if n == nil {
		return
	}
	path, err := a.downloads.Download(ctx, n.ID, n.Title)
	if err != nil {
		a.report(err)
		return
	}
	fmt.Fprintln(a.out, okStyle.Render("Saved to "+path))
}
