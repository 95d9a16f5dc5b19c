// Package metrics exposes Prometheus collectors for the header validation pipeline.
package metrics

const (
	namespace = "blockinsight7000"

	statusSuccess = "success"
	statusError   = "error"
)

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusSuccess
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
