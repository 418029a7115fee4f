// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder writing to a chosen sink,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - context-first helpers (Infof, ErrorKV, etc.).
//
// The terminal surface owns stdout, so logs go to stderr or to a file.
package logger
