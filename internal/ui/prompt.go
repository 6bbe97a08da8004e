package ui

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// PromptReportPath asks where the report should be saved or loaded from.
func PromptReportPath(label, defaultPath string) (string, error) {
	pathPrompt := promptui.Prompt{
		Label:     label,
		Default:   defaultPath,
		AllowEdit: true,
		Validate: func(input string) error {
			if len(input) < 1 {
				return errors.New("path must not be empty")
			}
			return nil
		},
	}

	result, err := pathPrompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return result, nil
}
