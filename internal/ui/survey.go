package ui

import "github.com/AlecAivazis/survey/v2"

// IconOption swaps survey's question mark for "-" to match the huh prompts.
func IconOption() survey.AskOpt {
	return survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = "-"
	})
}
