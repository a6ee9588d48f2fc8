package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/validation"
)

// PromptInitDataset runs on an empty database and asks for a dataset file
// to import. An empty path means the user skipped the import.
func PromptInitDataset() (string, error) {
	importNow := true

	err := huh.NewConfirm().
		Title("Welcome to Tally! The database is empty.").
		Description("Import a dataset of employees and transactions now?").
		Affirmative("Yes").
		Negative("No").
		Value(&importNow).
		Run()

	if err != nil {
		return "", err
	}
	if !importNow {
		return "", nil
	}

	var path string
	err = huh.NewInput().
		Title("Please enter the dataset path:").
		Description("A JSON file with \"employees\" and \"transactions\" arrays.").
		Value(&path).
		Validate(validation.ValidateDatasetPath).
		Run()

	if err != nil {
		return "", err
	}

	return strings.TrimSpace(path), nil
}
