package constants

// User roles
const (
	RoleAdmin      = 1
	RoleContractor = 2
	RoleLabour     = 3
)

// Profile status
const (
	ProfileStatusPending   = "pending"
	ProfileStatusApproved  = "approved"
	ProfileStatusSuspended = "suspended"
	ProfileStatusRevoked   = "revoked"
)

// Skill type
const (
	SkillTypeSkilled   = "skilled"
	SkillTypeUnskilled = "unskilled"
)

// Project status
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusCancelled = "cancelled"
	ProjectStatusDraft     = "draft"
)

// Application status
const (
	ApplicationStatusApplied           = "applied"
	ApplicationStatusShortlisted       = "shortlisted"
	ApplicationStatusVideoVerified     = "video_verified"
	ApplicationStatusOfferSent         = "offer_sent"
	ApplicationStatusAccepted          = "accepted"
	ApplicationStatusTicketIssued      = "ticket_issued"
	ApplicationStatusBoardingConfirmed = "boarding_confirmed"
	ApplicationStatusRejected          = "rejected"
	ApplicationStatusNoShow            = "no_show"
)

// Attendance status
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusHalfDay = "half_day"
)

// Commission type
const (
	CommissionTypeProject       = "project"
	CommissionTypeMonthlyLabour = "monthly_labour"
)

// Commission amounts in rupees. Fixed system-wide, not per contractor.
const (
	ProjectCommissionAmount       = 5000
	MonthlyLabourCommissionAmount = 1000
)

// Default day rates in rupees when a labour profile has no rate set.
const (
	DefaultRateSkilled   = 800
	DefaultRateUnskilled = 550
)

// Reliability scoring
const (
	ReliabilityInitialScore     = 100
	ReliabilityNoShowPenalty    = 15
	ReliabilityCompletionBonus  = 1
	ReliabilityAttendanceWindow = 90 // days
)
