package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, unknown command, lookup miss)
	ExitConfigError = 2 // Configuration error (unreadable config, unsupported driver)
	ExitStoreError  = 3 // Store failure (connection lost, constraint violation)
)
