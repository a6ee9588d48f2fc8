package constants

const (
	MaxNameLen = 100

	// Label shown for the "no filter" choice in employee selectors
	AllEmployeesLabel = "All Employees"
)
