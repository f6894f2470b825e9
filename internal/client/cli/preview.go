package cli

import (
	"context"
	"fmt"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/services"
)

// escape is what terminals deliver for a bare Esc key press followed
// by Enter.
const escape = "\x1b"

func (a *App) preview(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}
	n := a.resolveNote(ctx, args, "Usage: preview <id>")
	if n == nil {
		return
	}

	fmt.Fprintf(a.out, "Loading preview of %q...\n", n.Title)
	snap := a.previews.Open(ctx, n.ID, n.Title, n.FilePath)
	defer a.previews.Close()

	a.renderPreview(snap)

	// The preview owns the prompt until the user closes it, so stale
	// payloads cannot outlive the view that requested them.
	for {
		line, err := GetSimpleText(a.reader, a.out, "[d]ownload, [Enter/q/Esc] close")
		if err != nil {
			return
		}
		switch line {
		case "", "q", escape:
			return
		case "d":
			a.download(ctx, args)
			return
		default:
			fmt.Fprintln(a.out, "Unknown choice:", line)
		}
	}
}

func (a *App) renderPreview(snap services.PreviewSnapshot) {
	switch snap.Status {
	case services.PreviewError:
		fmt.Fprintln(a.out, errorStyle.Render(snap.Message))
	case services.PreviewReady:
		switch snap.Kind {
		case services.KindText:
			fmt.Fprintln(a.out, titleStyle.Render(snap.Title))
			fmt.Fprintln(a.out, snap.Text)
		case services.KindPDF, services.KindImage:
			fmt.Fprintf(a.out, "%s preview fetched to %s\n", snap.Kind, snap.FilePath)
			fmt.Fprintln(a.out, dimStyle.Render("Open it with a local viewer, or press d to keep a copy."))
		default:
			fmt.Fprintln(a.out, "Preview is not available for this file type. Download the file to view it.")
		}
	default:
		fmt.Fprintln(a.out, "Preview closed.")
	}
}
