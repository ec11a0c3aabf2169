package holiday

import "time"

// Holiday is a paid day off. Every active staff member is credited as
// present on a holiday date.
type Holiday struct {
	ID        int64
	Date      time.Time
	Name      string
	CreatedAt time.Time
}
