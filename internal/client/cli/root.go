package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/common"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/netx"
)

func (a *App) getStatus() string {
	_, user := a.session.Current()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", user.Username)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, titleStyle.Render("Pennwest Connect")+" (type 'help' for commands)")

	a.session.Resolve(ctx)
	if a.isLoggedIn() {
		_, user := a.session.Current()
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
	}

	for {
		fmt.Fprintf(a.out, "pwc %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			if !errors.Is(err, io.EOF) {
				a.log.Error(ctx, "reading command", "error", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.logout()
		case "whoami":
			a.whoami()
		case "list":
			a.list(ctx, args)
		case "search":
			a.search(ctx, args)
		case "show":
			a.show(ctx, args)
		case "preview":
			a.preview(ctx, args)
		case "download":
			a.download(ctx, args)
		case "upload":
			a.upload(ctx)
		case "like":
			a.like(ctx, args)
		case "comment":
			a.comment(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: list [mine|recent], search <term>, show <id>, preview <id>, download <id>, upload, like <id>, comment <id>, delete <id>, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, list recent, exit")
	}
}

// requireLogin gates a command on an authenticated session.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, errorStyle.Render("Please log in first (type 'login' or 'register')."))
	return false
}

// report prints a command failure. Expired sessions and unreachable
// backends get dedicated guidance; everything else prints verbatim.
func (a *App) report(err error) {
	if a.session.Invalidate(err) {
		a.lastList = nil
		fmt.Fprintln(a.out, errorStyle.Render("Your session has expired. Please log in again."))
		return
	}
	if errors.Is(err, common.ErrUnavailable) {
		fmt.Fprintln(a.out, errorStyle.Render(a.connectivityHint()))
		return
	}
	fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
}

func (a *App) connectivityHint() string {
	base := a.config.APIBaseURL
	if normalized, _, err := netx.NormalizeBaseURL(base); err == nil {
		base = normalized
	}
	host := base
	if u, err := url.Parse(base); err == nil && u.Host != "" {
		host = u.Host
	}
	if netx.IsLocalHost(host) {
		return fmt.Sprintf("Cannot connect to the server. Make sure the backend is running on %s.", base)
	}
	return fmt.Sprintf("Cannot connect to the backend at %s. Check your network, or point PWC_API_URL at the right server.", base)
}
