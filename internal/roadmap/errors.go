package roadmap

import "fmt"

// BudgetError reports a non-positive weekly hour budget. Scheduling with it
// would never terminate, so this is caller misuse, not a degenerate input.
type BudgetError struct {
	WeeklyHours int
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("weekly hour budget must be positive, got %d", e.WeeklyHours)
}
