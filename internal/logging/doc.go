// Package logging assembles structured slog loggers for relname.
//
// It owns the console and JSON handlers and the level and output plumbing.
// Components tag their lines through NewComponentLogger, and parse decisions
// use DecisionAttrs so discarded matches can be traced with --log-level debug.
package logging
