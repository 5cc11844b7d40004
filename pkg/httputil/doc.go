// Package httputil provides retry support for network-facing setup.
//
// Serve mode connects to its cache and store backends at startup, often
// racing container orchestration that brings those backends up alongside
// it. [Retry] wraps such connection attempts with exponential backoff.
//
// Only errors wrapped in [RetryableError] are retried; anything else is
// treated as permanent and returned immediately:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    st, err := store.NewMongoStore(ctx, uri, "", "")
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    return nil
//	})
package httputil
