package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

// PromptEmployee asks for an employee filter. The first option is the
// "All Employees" entry, which maps to the empty employee ID.
func PromptEmployee(employees []model.Employee, current string) (string, error) {
	selected := current

	opts := make([]huh.Option[string], 0, len(employees)+1)
	opts = append(opts, huh.NewOption(constants.AllEmployeesLabel, model.EmptyEmployee.ID))
	for _, e := range employees {
		opts = append(opts, huh.NewOption(e.FullName(), e.ID))
	}

	err := huh.NewSelect[string]().
		Title("Filter by employee").
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}
