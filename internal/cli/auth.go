package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/services"
)

// Register prompts for a new account and creates it.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	confirmation, err := GetPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}

	_, err = a.users.Register(ctx, services.RegisterRequest{
		Username:     username,
		Email:        email,
		Password:     password,
		Confirmation: &confirmation,
	})
	if err != nil {
		report(a.out, err)
		return err
	}

	fmt.Fprintln(a.out, a.tr("Account created. You can now login."))
	return nil
}

// Login authenticates by username or email and optionally keeps the session.
func (a *App) Login(ctx context.Context) error {
	identity, err := GetSimpleText(a.reader, "Username or email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	keep, err := Confirm(a.reader, "Keep me logged in?", a.out)
	if err != nil {
		return err
	}

	user, err := a.users.Login(ctx, identity, password, keep)
	if err != nil {
		report(a.out, err)
		return err
	}

	a.user = user
	fmt.Fprintln(a.out, a.tr("Welcome, %s!", user.Username))
	return nil
}

// Logout forgets the saved session and stops the timer.
func (a *App) Logout(ctx context.Context) error {
	err := a.users.Logout(ctx)
	a.user = nil
	a.timer.Reset()
	if err != nil {
		report(a.out, err)
		return err
	}
	fmt.Fprintln(a.out, a.tr("Logged out."))
	return nil
}

// Profile shows the account and lets the user change username, email or
// password. Empty answers keep the current values.
func (a *App) Profile(ctx context.Context) error {
	fmt.Fprintf(a.out, "Username: %s\nEmail: %s\n", a.user.Username, a.user.Email)

	change, err := Confirm(a.reader, "Edit profile?", a.out)
	if err != nil || !change {
		return err
	}

	username, err := GetSimpleText(a.reader, "New username (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		username = a.user.Username
	}
	email, err := GetSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = a.user.Email
	}
	current, err := GetPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := GetPassword(a.reader, "New password (empty to keep)", a.out)
	if err != nil {
		return err
	}
	var confirmation string
	if newPassword != "" {
		if confirmation, err = GetPassword(a.reader, "Confirm new password", a.out); err != nil {
			return err
		}
	}

	user, err := a.users.UpdateProfile(ctx, services.ProfileUpdate{
		UserID:          a.user.ID,
		Username:        username,
		Email:           email,
		CurrentPassword: current,
		NewPassword:     newPassword,
		Confirmation:    confirmation,
	})
	if err != nil {
		report(a.out, err)
		return err
	}

	a.user = user
	fmt.Fprintln(a.out, a.tr("Profile updated."))
	return nil
}

// DeleteAccount removes the account after confirmation and the current password.
func (a *App) DeleteAccount(ctx context.Context) error {
	sure, err := Confirm(a.reader, "Delete your account permanently?", a.out)
	if err != nil || !sure {
		return err
	}
	password, err := GetPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}

	if err := a.users.DeleteAccount(ctx, a.user.ID, password); err != nil {
		report(a.out, err)
		return err
	}

	a.user = nil
	a.timer.Reset()
	fmt.Fprintln(a.out, a.tr("Account deleted."))
	return nil
}

func (a *App) restoreSession(ctx context.Context) {
	user, err := a.users.AutoLogin(ctx)
	switch {
	case err == nil && user != nil:
		a.user = user
		fmt.Fprintln(a.out, a.tr("Welcome back, %s!", user.Username))
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrInvalidToken):
		report(a.out, err)
	case err != nil:
		a.log.Error(ctx, "failed to restore session", "error", err)
	}
}
