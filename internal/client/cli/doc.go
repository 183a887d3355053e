// Package cli provides the interactive taskboard command-line client.
//
// It wires configuration, the local credential store, the API client and
// session manager, and an interactive REPL over the backend's teams,
// projects and tasks. Typical flow: bootstrap the stored session, show the
// prompt, and execute user commands until exit.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
