package cli

import (
	"context"
	"fmt"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/services"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/session"
)

func (a *App) register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, a.out, "Username")
	if err != nil {
		return
	}
	email, err := GetSimpleText(a.reader, a.out, "Email")
	if err != nil {
		return
	}
	password, err := GetPassword(a.reader, a.out, "Password")
	if err != nil {
		return
	}
	confirm, err := GetPassword(a.reader, a.out, "Confirm password")
	if err != nil {
		return
	}

	if problems := services.ValidateRegistration(username, email, password); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(a.out, errorStyle.Render(p))
		}
		return
	}
	if password != confirm {
		fmt.Fprintln(a.out, errorStyle.Render("Passwords do not match."))
		return
	}

	if err := a.session.Register(ctx, email, username, password); err != nil {
		a.report(err)
		return
	}
	fmt.Fprintln(a.out, okStyle.Render("Account created. You are now logged in."))
}

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, a.out, "Email")
	if err != nil {
		return
	}
	password, err := GetPassword(a.reader, a.out, "Password")
	if err != nil {
		return
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		a.report(err)
		return
	}
	_, user := a.session.Current()
	fmt.Fprintf(a.out, "%s\n", okStyle.Render(fmt.Sprintf("Logged in as %s.", user.Username)))
}

func (a *App) logout() {
	if err := a.session.Logout(); err != nil {
		fmt.Fprintln(a.out, errorStyle.Render(err.Error()))
		return
	}
	a.lastList = nil
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) whoami() {
	st, user := a.session.Current()
	if st == session.Authenticated && user != nil {
		fmt.Fprintf(a.out, "%s <%s>\n", user.Username, user.Email)
		return
	}
	fmt.Fprintln(a.out, "Not logged in.")
}
