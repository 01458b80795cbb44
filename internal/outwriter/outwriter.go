// Package outwriter has output and writer logic.
package outwriter

import "fmt"

// createFormatter creates the percentage formatter closure used by the
// matrix table.
func createFormatter(precision int) func(float64) string {
	return func(v float64) string {
		return fmt.Sprintf("%.*f", precision, v)
	}
}
