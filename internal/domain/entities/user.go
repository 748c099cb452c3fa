package entities

// SystemUserID is the actor recorded for system-generated changes.
const SystemUserID = "system"

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleTechnician   Role = "technician"
	RoleCustomerCare Role = "customer-care"
	RoleCustomer     Role = "customer"
)

// User is the acting viewer of a request.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
