package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, I/O failure)
	ExitConfigError = 2 // Configuration error (malformed config, bad default sort)
	ExitDataError   = 3 // Data error (corrupt notes file, validation failure)
	ExitNotFound    = 4 // Referenced note id does not exist
)
