package render

import (
	"fmt"
	"time"
)

// RelativeTime formatea el tiempo transcurrido desde t en cubetas cortas:
// "Just now", "Nm ago", "Nh ago" o "Nd ago".
func RelativeTime(t, now time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Minute:
		// Incluye timestamps en el futuro por relojes desfasados.
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	}
}
