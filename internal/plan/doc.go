// Package plan defines power plan identifiers and records, the embedded
// metadata for the operating system's default plans, and the line scanner
// used to pull "<GUID>  (<name>)" pairs out of powercfg output.
//
// Key concepts:
//   - ID: a plan GUID, parsed case-insensitively, rendered lower case
//   - Record: identifier, display name and icon of one plan
//   - Defaults: the fixed set of well-known plans shipped by Windows
//   - Scan / FirstID: locale-independent extraction from tool output
package plan
