// Package mcp provides an MCP (Model Context Protocol) server adapter for DropCard.
// It enables AI assistants to look up cards and contacts and draft follow-ups.
package mcp

import "errors"

// Required-port errors returned by Ports.Validate.
var (
	// ErrMissingCardService is returned when the card service is not provided.
	ErrMissingCardService = errors.New("mcp: card service is required")

	// ErrMissingContactService is returned when the contact service is not provided.
	ErrMissingContactService = errors.New("mcp: contact service is required")
)
