// Package paths resolves where qqbot looks for its configuration file.
//
// # Resolution Order
//
// [ResolveConfigFile] picks the first of:
//
//  1. an explicit path (the --config flag or QQBOT_CONFIG)
//  2. qqbot.cfg in the working directory, if it exists
//  3. qqbot.cfg under the user config directory, if it exists
//
// and falls back to qqbot.cfg in the working directory, so a missing file is
// reported against the path users expect.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for the user config directory:
//
//	| OS      | User config file                                 |
//	|---------|--------------------------------------------------|
//	| Linux   | ~/.config/qqbot/qqbot.cfg                        |
//	| macOS   | ~/Library/Application Support/qqbot/qqbot.cfg    |
//	| Windows | %LOCALAPPDATA%\qqbot\qqbot.cfg                   |
package paths
