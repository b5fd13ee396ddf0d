// Package command exposes go-command compatible command handlers for the
// registry mutations (add/delete individuals, add/update/delete vaccinations).
// Commands are wired by the service layer and can be invoked by any transport.
package command
