package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/ui/views"
)

type BrowseAction string

const (
	ActionFilter   BrowseAction = "filter"
	ActionViewMore BrowseAction = "more"
	ActionApprove  BrowseAction = "approve"
	ActionRefresh  BrowseAction = "refresh"
	ActionQuit     BrowseAction = "quit"
)

// BrowseOptions controls which actions are offered.
type BrowseOptions struct {
	CanFilter     bool
	MoreAvailable bool
	HasRows       bool
}

// BrowseActions lists the actions available for the given state.
func BrowseActions(o BrowseOptions) []BrowseAction {
	var actions []BrowseAction
	if o.CanFilter {
		actions = append(actions, ActionFilter)
	}
	if o.MoreAvailable {
		actions = append(actions, ActionViewMore)
	}
	if o.HasRows {
		actions = append(actions, ActionApprove)
	}
	return append(actions, ActionRefresh, ActionQuit)
}

func actionLabel(a BrowseAction) string {
	switch a {
	case ActionFilter:
		return "Filter by employee"
	case ActionViewMore:
		return "View More"
	case ActionApprove:
		return "Toggle approvals"
	case ActionRefresh:
		return "Refresh"
	default:
		return "Quit"
	}
}

func PromptBrowseAction(o BrowseOptions) (BrowseAction, error) {
	actions := BrowseActions(o)

	opts := make([]huh.Option[BrowseAction], 0, len(actions))
	for _, a := range actions {
		opts = append(opts, huh.NewOption(actionLabel(a), a))
	}

	selected := actions[0]
	err := huh.NewSelect[BrowseAction]().
		Title("What next?").
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

// PromptApprovals shows the displayed rows with the currently approved ones
// preselected and returns the IDs the user left checked.
func PromptApprovals(items []views.TransactionListItem) ([]string, error) {
	var selected []string

	opts := make([]huh.Option[string], 0, len(items))
	for _, item := range items {
		label := item.Date + "  " + item.Employee + "  " + item.Merchant + "  " + item.Amount
		opts = append(opts, huh.NewOption(label, item.ID).Selected(item.Approved))
	}

	err := huh.NewMultiSelect[string]().
		Title("Approved transactions").
		Description("Space to toggle, enter to confirm").
		Options(opts...).
		Value(&selected).
		Run()

	return selected, err
}

