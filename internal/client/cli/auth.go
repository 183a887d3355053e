package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/client/session"
	"github.com/dmitrijs2005/taskboard/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the profile fields and creates an account; on
// success the session manager logs the new user straight in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.session.Register(ctx, session.RegisterInput{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(password),
	})
	if err != nil {
		a.reportErr(err)
		return err
	}

	fmt.Fprintln(a.out, "Account created, you are signed in.")
	return nil
}

// Login prompts for credentials and authenticates against the backend.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, username, string(password)); err != nil {
		a.reportErr(err)
		return err
	}

	snap := a.session.Current()
	fmt.Fprintf(a.out, "Signed in as %s\n", snap.User.FullName())
	return nil
}

// Logout drops the stored credential and the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// WhoAmI prints the current identity.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Current()
	if !snap.Authenticated() {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	u := snap.User
	fmt.Fprintf(a.out, "%s <%s> (id %d)\n", u.FullName(), u.Email, u.ID)
	return nil
}

// Refresh re-fetches the profile for the stored credential. A failure is
// reported but does not sign the user out.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.session.RefreshUser(ctx); err != nil {
		a.reportErr(err)
		return err
	}
	fmt.Fprintln(a.out, "Profile refreshed.")
	return nil
}
