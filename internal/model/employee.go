package model

import "strings"

// Employee is a roster entry. The zero ID is reserved for EmptyEmployee.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
}

// EmptyEmployee is the "All Employees" selection: no filter applied.
var EmptyEmployee = Employee{ID: "", FirstName: "All", LastName: "Employees"}

func (e Employee) IsEmpty() bool {
	return e.ID == ""
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}
