package employee

// Employee mirrors the backend user record.
type Employee struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	JobStartDate  string `json:"job_start_date"`
	FullTime      bool   `json:"full_time"`
	PhoneNumber   string `json:"phone_number"`
	PersonalEmail string `json:"personal_email"`
	WorkEmail     string `json:"work_email"`
	IsActive      bool   `json:"is_active"`
	Role          Role   `json:"role"`
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)
