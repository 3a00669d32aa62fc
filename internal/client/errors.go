package client

import "errors"

var (
	ErrUsage          = errors.New("usage: client [flags] <name> <password> <command> [arg]")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArg     = errors.New("invalid command argument")
)
