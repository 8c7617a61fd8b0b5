// Package cli provides the interactive docuseek command-line client.
//
// It wires configuration, the local credential store, the API client, and
// the session manager into an interactive REPL with two screens: a login
// screen (sign in, register, social sign-in) and a home screen (document
// search, profile, session status). Which screen is active is decided by
// the session route guard on every prompt cycle.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartHealthWatcher, and runREPL for details.
package cli
