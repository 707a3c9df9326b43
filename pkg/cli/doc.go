/*
Package cli provides command-line interface utilities for Custodian.

The cli package includes typed command errors and signal handling helpers
used by the custodian command.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
