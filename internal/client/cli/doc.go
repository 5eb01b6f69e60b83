// Package cli provides the interactive Crammer+ terminal client.
//
// It wires configuration, the local credential store, the HTTP gateway, the
// session controller and navigation into a REPL whose commands follow the
// current screen. Typical flow: restore a stored session, start a background
// connectivity watcher, then log in or sign up and browse the dashboard.
//
// Screens:
//   - LoginScreen / SignupScreen: validate locally, call the gateway, hand
//     the credentials to the session controller
//   - HomeScreen: role dashboard, quick actions, confirmed logout
//
// Navigation is never done by the screens; it follows session changes.
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
