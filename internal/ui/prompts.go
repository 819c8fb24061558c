package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// PromptYesNo prompts the user for a yes/no answer.
// In non-interactive mode the default is returned without prompting.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, nil
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptMultiSelect prompts the user to select multiple items from a list
// and returns the indices of the selected options.
func (u *UI) PromptMultiSelect(prompt string, options []string) ([]int, error) {
	if u.nonInteractive {
		return nil, fmt.Errorf("cannot prompt for %q in non-interactive mode", prompt)
	}

	var selected []string
	p := &survey.MultiSelect{
		Message: prompt,
		Options: options,
	}

	if err := survey.AskOne(p, &selected); err != nil {
		return nil, err
	}

	selectedMap := make(map[string]bool, len(selected))
	for _, sel := range selected {
		selectedMap[sel] = true
	}

	var indices []int
	for i, opt := range options {
		if selectedMap[opt] {
			indices = append(indices, i)
		}
	}

	return indices, nil
}
