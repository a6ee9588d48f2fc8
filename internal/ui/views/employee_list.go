package views

import (
	"github.com/hance08/tally/internal/model"
	"github.com/pterm/pterm"
)

type EmployeeListView struct{}

func NewEmployeeListView() *EmployeeListView {
	return &EmployeeListView{}
}

func (v *EmployeeListView) Render(employees []model.Employee) error {
	if len(employees) == 0 {
		pterm.Warning.Println("No employees found")
		return nil
	}

	tableData := pterm.TableData{{"ID", "First Name", "Last Name"}}
	for _, e := range employees {
		tableData = append(tableData, []string{e.ID, e.FirstName, e.LastName})
	}

	pterm.DefaultSection.Printf("Employees")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d employees\n", len(employees))
	return nil
}
