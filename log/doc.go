// Package log contains default cvdrisk logger interface with it's subcomponents.
// It is used by all packages to log all messages.
//
// The package wraps around the uni-logger leveled loggers. Any logger that
// implements the unilogger.LeveledLogger interface might be set as the default
// one. Loggers implementing unilogger.DebugLeveledLogger get the debug2 and
// debug3 levels as well.
//
// The ModuleLogger allows to set different logger instance or logging level
// for a single cvdrisk component - i.e. only the population sampling.
package log
