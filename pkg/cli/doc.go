/*
Package cli provides command-line interface utilities for lf2data.

The cli package includes output formatters, progress reporters, and common CLI
helpers used by the lf2data command.

Output Formatting:

The cli package supports multiple output formats (text, JSON, CSV) for
displaying command results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	data := MyCommandResult{...}
	if err := formatter.FormatTo(os.Stdout, data); err != nil {
		return err
	}

CSV output works with any value implementing CSVRecorder, such as catalog
listings.

Progress Reporting:

For long-running directory scans, use the progress reporter:

	progress := cli.NewProgressReporter(os.Stdout)
	progress.Start(totalFiles)
	for i := 0; i < totalFiles; i++ {
		// Parse a file
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler()
	defer stop()
	// Use ctx for operations that should be cancelled on shutdown

Exit Codes:

ExitCode maps errors to process exit codes: parse failures in the input
data exit with 1, operational failures (unreadable files, bad flags) exit
with 2.
*/
package cli
