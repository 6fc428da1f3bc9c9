package leave

type CreateLeaveRequest struct {
	LeaveType Type   `json:"leave_type" binding:"required,oneof=ANNUAL SICK UNPAID OTHER"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"max=1000"`
}

type TransitionRequest struct {
	Action Action `json:"action" binding:"required"`
}

type LeaveDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LeaveEmployeeResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	EmployeeCode string                   `json:"employee_code"`
	Department   *LeaveDepartmentResponse `json:"department,omitempty"`
}

type LeaveResponse struct {
	ID           string                 `json:"id"`
	CompanyID    string                 `json:"company_id"`
	EmployeeID   string                 `json:"employee_id"`
	Employee     *LeaveEmployeeResponse `json:"employee,omitempty"`
	LeaveType    Type                   `json:"leave_type"`
	StartDate    string                 `json:"start_date"`
	EndDate      string                 `json:"end_date"`
	TotalDays    int                    `json:"total_days"`
	Reason       string                 `json:"reason"`
	Status       Status                 `json:"status"`
	ReviewedByID *string                `json:"reviewed_by_id"`
	ReviewedAt   *string                `json:"reviewed_at"`
	CreatedAt    string                 `json:"created_at"`
}

// Stats are dashboard counters over the caller's scope. They ignore the
// search term.
type Stats struct {
	Pending       int64 `json:"pending"`
	ApprovedMonth int64 `json:"approvedMonth"`
	RejectedMonth int64 `json:"rejectedMonth"`
	OnLeaveToday  int64 `json:"onLeaveToday"`
}

type ListResult struct {
	Items []LeaveResponse
	Total int64
	Stats Stats
}
