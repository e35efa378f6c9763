package analytics

// VisitDateLayout keys visits by calendar day. Day-first with Western-Arabic
// digits, the same shape the persisted record compares against.
const VisitDateLayout = "02/01/2006"

// Analytics is the single process-wide visitor tally.
type Analytics struct {
	DailyVisitors int    `json:"dailyVisitors"`
	TotalVisitors int    `json:"totalVisitors"`
	LastVisitDate string `json:"lastVisitDate"`
}

// RecordVisit folds one counted visit into the tally: the daily counter
// resets to 1 on a new day and increments otherwise, the total always
// increments. Session de-duplication happens in the service; this is the
// bare counter transition.
func (a Analytics) RecordVisit(today string) Analytics {
	if a.LastVisitDate != today {
		a.DailyVisitors = 1
	} else {
		a.DailyVisitors++
	}
	a.TotalVisitors++
	a.LastVisitDate = today
	return a
}
