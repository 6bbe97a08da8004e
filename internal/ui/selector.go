// Package ui holds the interactive prompt layer. The resolution engine only
// ever sees the abstract Selector interface; promptui stays in here.
package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/substantialcattle5/harvester/internal/duplicate"
	"github.com/substantialcattle5/harvester/internal/resolve"
)

// PromptSelector implements resolve.Selector on top of promptui.
type PromptSelector struct{}

func NewPromptSelector() *PromptSelector {
	return &PromptSelector{}
}

// GroupAction asks what to do with a whole directory group. Destructive
// bulk choices are confirmed before being returned; declining the
// confirmation falls back to skipping the group.
func (s *PromptSelector) GroupAction(group duplicate.Group) (resolve.GroupAction, error) {
	actionPrompt := promptui.Select{
		Label: fmt.Sprintf("Action for %s", group.Dir),
		Items: []string{"skip", "delete all", "move all", "individual"},
		Templates: &promptui.SelectTemplates{
			Selected: "Directory action: {{ . }}",
			Active:   "▸ {{ . }}",
			Inactive: "  {{ . }}",
			Details: `
{{ "Details:" | faint }}
{{ if eq . "skip" }}Leave every duplicate in this directory untouched
{{ else if eq . "delete all" }}Delete the later-discovered copy of every pair
{{ else if eq . "move all" }}Move the later-discovered copies into a directory of your choice
{{ else if eq . "individual" }}Decide pair by pair{{ end }}
`,
		},
	}

	_, result, err := actionPrompt.Run()
	if err != nil {
		return resolve.GroupSkip, fmt.Errorf("prompt failed: %w", err)
	}

	switch result {
	case "delete all":
		ok, err := s.confirm(fmt.Sprintf("Delete %d files in %s", len(group.Pairs), group.Dir))
		if err != nil || !ok {
			return resolve.GroupSkip, nil
		}
		return resolve.GroupDeleteAll, nil
	case "move all":
		return resolve.GroupMoveAll, nil
	case "individual":
		return resolve.GroupIndividual, nil
	default:
		return resolve.GroupSkip, nil
	}
}

// PairAction asks what to do with one duplicate pair.
func (s *PromptSelector) PairAction(pair duplicate.Pair) (resolve.PairAction, error) {
	actionPrompt := promptui.Select{
		Label: "Action for this pair",
		Items: []string{"keep both", "delete first", "delete second", "move first", "move second"},
		Templates: &promptui.SelectTemplates{
			Selected: "Pair action: {{ . }}",
			Active:   "▸ {{ . }}",
			Inactive: "  {{ . }}",
			Details: `
{{ "Details:" | faint }}
{{ if eq . "keep both" }}Leave both files in place
{{ else if eq . "delete first" }}Delete the duplicate (file 1)
{{ else if eq . "delete second" }}Delete the original (file 2)
{{ else if eq . "move first" }}Move the duplicate (file 1) elsewhere
{{ else if eq . "move second" }}Move the original (file 2) elsewhere{{ end }}
`,
		},
	}

	_, result, err := actionPrompt.Run()
	if err != nil {
		return resolve.PairKeepBoth, fmt.Errorf("prompt failed: %w", err)
	}

	switch result {
	case "delete first":
		return resolve.PairDeleteFirst, nil
	case "delete second":
		return resolve.PairDeleteSecond, nil
	case "move first":
		return resolve.PairMoveFirst, nil
	case "move second":
		return resolve.PairMoveSecond, nil
	default:
		return resolve.PairKeepBoth, nil
	}
}

// Destination asks for the directory moved files should land in.
func (s *PromptSelector) Destination() (string, error) {
	destPrompt := promptui.Prompt{
		Label: "Target directory for moving",
		Validate: func(input string) error {
			if len(input) < 1 {
				return errors.New("destination must not be empty")
			}
			return nil
		},
	}

	result, err := destPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}

func (s *PromptSelector) confirm(label string) (bool, error) {
	confirmPrompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := confirmPrompt.Run()
	if err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return true, nil
}
