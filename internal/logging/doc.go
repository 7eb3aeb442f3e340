// Package logging builds the slog loggers used by the qqbot CLI.
//
// Terminal output goes through [Handler], a compact line format with
// optional color. Attribute values whose key looks secret are masked, so a
// stray password attribute never reaches stderr in clear text. JSON output
// uses the standard slog JSON handler, and [NewMultiHandler] adds a second
// sink for --log-file.
//
// Verbosity flags map to levels with [LevelFromVerbosity]. Commands fetch
// their logger with [FromContext]:
//
//	logger := logging.FromContext(cmd.Context())
//	logger.Info("generated default config", "path", path)
//
// Tests can route output to t.Log with [ForTest].
package logging
