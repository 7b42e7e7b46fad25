package domain

// MonthStatus classifies one project-month after allocation. The same values
// describe a project's overall status across the window: StatusNone means the
// project had no demand inside the window at all.
type MonthStatus string

const (
	StatusNone      MonthStatus = "none"
	StatusStaffed   MonthStatus = "staffed"
	StatusPartial   MonthStatus = "partial"
	StatusUnstaffed MonthStatus = "unstaffed"
)
