package attendance

type ListAttendanceQuery struct {
	Date       string `form:"date"`
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id"`
}

type AttendanceResponse struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	EmployeeAvatar string `json:"employee_avatar"`
	Department     string `json:"department"`
	Date           string `json:"date"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	Status         string `json:"status"`
}
