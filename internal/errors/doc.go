// Package errors maps qqbot failures to process exit codes.
//
// Commands return an [*ExitError] carrying the code and an optional
// suggestion that the root command prints below the message:
//
//	Error: section "PERSONAL" has no option "password"
//	Suggestion: Add "password = ..." under [PERSONAL]
//
// Exit codes are [ExitSuccess] (0), [ExitUser] (1) for problems the user can
// fix such as a missing or incomplete qqbot.cfg, and [ExitSystem] (2) for I/O
// and permission failures. [Code] extracts the code from any error chain.
package errors
