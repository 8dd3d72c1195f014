// Package log provides the slog setup for devicemodels.
//
// Records pass through SecureHandler, which masks request credentials before
// they reach the output:
//   - attributes named like HTTP credentials (Cookie, Authorization, ...)
//   - Bearer/Basic authorization values and JWTs
//   - user:password pairs embedded in URLs
//
// Config files may carry cookies or tokens for the wiki, and debug logs print
// request details, so masking is applied at every level.
//
// # Usage
//
//	logger, closer, err := log.NewLogger(log.Options{Verbose: true, File: "devicemodels.log"})
//	if err != nil {
//	    return err
//	}
//	defer closer.Close()
//	slog.SetDefault(logger)
package log
