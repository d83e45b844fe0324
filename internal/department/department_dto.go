package department

type DepartmentResponse struct {
	Name      string `json:"name"`
	Headcount int    `json:"headcount"`
	Active    int    `json:"active"`
	OnLeave   int    `json:"on_leave"`
}

type DepartmentMemberResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type DepartmentDetailResponse struct {
	DepartmentResponse
	Members []DepartmentMemberResponse `json:"members"`
}
