package employee

type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Salary      *int64 `json:"salary"`
	JoiningDate string `json:"joining_date"`
}

type UpdateEmployeeRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Salary      *int64 `json:"salary"`
	JoiningDate string `json:"joining_date"`
}

type ListEmployeesQuery struct {
	Department string `form:"department"`
	Status     string `form:"status"`
	Q          string `form:"q"`
}

type EmployeeResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Avatar       string         `json:"avatar"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	Department   string         `json:"department"`
	Status       string         `json:"status"`
	Salary       *int64         `json:"salary,omitempty"`
	JoiningDate  string         `json:"joining_date"`
	LeaveBalance map[string]int `json:"leave_balance"`
}

type EmployeeOptionResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
}
