package cli

import (
	"context"
	"os"

	"github.com/docuseek/docuseek/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password and submits them to the session
// manager. Field validation happens here, on the form side: the session
// manager itself accepts whatever it is given.
//
// While a previous auth operation is still loading the form refuses to
// submit, mirroring a disabled submit button.
func (a *App) Login(ctx context.Context) error {
	if a.sess.State().IsLoading() {
		printlnFn("Another sign-in is already in progress")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	creds := models.Credentials{Email: email, Password: string(password)}
	if err := a.validate.Struct(creds); err != nil {
		printlnFn("A valid email and a password are required")
		return nil
	}

	if err := a.sess.Login(ctx, creds); err != nil {
		printlnFn("Sign-in failed:", a.sess.State().Err)
		return err
	}

	printlnFn("Signed in as", email)
	return nil
}

// Register prompts for the registration fields and creates an account. On
// success the user is signed in directly, same as Login.
func (a *App) Register(ctx context.Context) error {
	if a.sess.State().IsLoading() {
		printlnFn("Another sign-in is already in progress")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Enter full name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	data := models.RegisterData{
		Email:    email,
		Username: username,
		Password: string(password),
		FullName: fullName,
	}
	if err := a.validate.Struct(data); err != nil {
		printlnFn("Registration needs a valid email, a username of at least 3 characters and a password of at least 8")
		return nil
	}

	if err := a.sess.Register(ctx, data); err != nil {
		printlnFn("Registration failed:", a.sess.State().Err)
		return err
	}

	printlnFn("Account created, signed in as", email)
	return nil
}

// Logout tears the session down. Never fails: the server call inside is
// best effort.
func (a *App) Logout(ctx context.Context) error {
	a.sess.Logout(ctx)
	printlnFn("Signed out")
	return nil
}

// Refresh replaces the current token with a fresh one. On failure the
// session has already been torn down and the guard will land the user on
// the login screen.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.sess.RefreshToken(ctx); err != nil {
		printlnFn("Session could not be refreshed, please sign in again")
		return err
	}
	printlnFn("Session refreshed")
	return nil
}

// ClearError drops the session error shown on the login screen.
func (a *App) ClearError(ctx context.Context) error {
	a.sess.ClearError()
	return nil
}
