package iocache

import (
	"fmt"

	"github.com/mattmahin/authortrend/schema"
)

// PrintCacheStatus writes a short human-readable cache summary to stdout.
func PrintCacheStatus(status schema.CacheStatus) {
	fmt.Printf("Blame cache status\n")
	fmt.Printf("  Backend:  %s\n", status.Backend)
	if status.Location != "" {
		fmt.Printf("  Location: %s\n", status.Location)
	}
	fmt.Printf("  Entries:  %d\n", status.EntryCount)
	fmt.Printf("  Size:     %.1f KB\n", float64(status.TotalBytes)/1024.0)
}
