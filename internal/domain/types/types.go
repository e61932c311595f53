// Package types contains read shapes shared across the application.
package types

// Measurement is one entry of a ranking view: a tracked user and the value
// stored for them under a single metric.
type Measurement struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}
