package user

import "time"

type Role string

const (
	RoleAdmin          Role = "admin"           // Full access
	RolePayrollManager Role = "payroll_manager" // Runs periods and payments
	RoleEmployee       Role = "employee"        // Read-only on own data
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
