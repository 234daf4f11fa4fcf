// Package commands defines the mohr CLI.
//
// Commands
//
//   - keygen   Generate a key pair and print its session ID
//   - id       Print the session ID of a saved key pair
//   - sign     Sign one or more messages with a saved key pair
//   - verify   Check a signature against a session ID and messages
//
// The key pair lives in a PEM file selected with --key; everything
// else travels as text on the command line, in the same canonical
// form the library uses on the wire.
package commands
