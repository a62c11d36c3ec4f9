package httptransport

import "expvar"

var metricHTTPErrors = expvar.NewMap("http_errors_by_code")
