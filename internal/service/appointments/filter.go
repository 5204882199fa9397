package appointments

import (
	"time"

	"github.com/JeffreyRobertLynch/customer-scheduling-management-system/internal/domain"
)

// Фильтры списка - чистые предикаты над уже загруженным списком встреч.
// Границы недели и месяца считаются в часовом поясе бизнеса, чтобы фильтр
// не зависел от пояса клиента.

// matchesView проверяет, попадает ли встреча в выборку для заданного фильтра
func matchesView(a *domain.Appointment, view domain.AppointmentView, ref time.Time, loc *time.Location) bool {
	switch view {
	case domain.ViewWeek:
		return withinWeek(a.Start, ref, loc)
	case domain.ViewMonth:
		return sameCalendarMonth(a.Start, ref, loc)
	default:
		return true
	}
}

// withinWeek - встреча начинается в интервале [ref, ref+7 суток)
func withinWeek(start, ref time.Time, loc *time.Location) bool {
	start = start.In(loc)
	ref = ref.In(loc)
	return !start.Before(ref) && start.Before(ref.AddDate(0, 0, 7))
}

// sameCalendarMonth - встреча начинается в том же календарном месяце, что и ref
func sameCalendarMonth(start, ref time.Time, loc *time.Location) bool {
	start = start.In(loc)
	ref = ref.In(loc)
	return start.Year() == ref.Year() && start.Month() == ref.Month()
}
