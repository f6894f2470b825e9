package cli

import (
	"context"
	"fmt"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/services"
)

func (a *App) upload(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	path, err := GetSimpleText(a.reader, a.out, "File path")
	if err != nil {
		return
	}
	var file *services.SelectedFile
	if path != "" {
		file, err = services.LoadLocalFile(path)
		if err != nil {
			fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
			return
		}
	}
	title, err := GetSimpleText(a.reader, a.out, "Title")
	if err != nil {
		return
	}
	class, err := GetSimpleText(a.reader, a.out, "Class name")
	if err != nil {
		return
	}
	description, err := GetMultiline(a.reader, a.out, "Description (optional)")
	if err != nil {
		return
	}

	pending := &services.PendingUpload{
		File:        file,
		Title:       title,
		ClassName:   class,
		Description: description,
	}

	note, err := a.uploads.Submit(ctx, pending)
	fmt.Fprintln(a.out)
	if err != nil {
		if a.session.Invalidate(err) {
			a.lastList = nil
			fmt.Fprintln(a.out, errorStyle.Render("Your session has expired. Please log in again."))
			return
		}
		fmt.Fprintln(a.out, errorStyle.Render(services.UploadErrorMessage(err)))
		return
	}
	fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf("Uploaded %q.", note.Title)))
}
