// Package report formats the results of deskconf commands.
//
// Two formatters are provided: HumanFormatter writes aligned text for a
// terminal and JSONFormatter writes indented JSON for scripts. NewFormatter
// picks one from the --json and --quiet flags.
//
//	result := report.NewValidationResult(src, err)
//	_ = report.NewFormatter(jsonOutput, quiet).FormatValidation(os.Stdout, result)
package report
