package customapps

import (
	"fmt"
	"strconv"
	"strings"
)

// FormInput contains data entered by user in the Add Custom App flow.
// Delay arrives as typed, not parsed.
type FormInput struct {
	Name    string
	Command string
	Delay   string
}

// Request is a validated custom entry ready to be written to the
// autostart directory.
type Request struct {
	Name    string
	Command string
	Delay   int
}

// BuildRequest validates form data and creates a Request.
func BuildRequest(in FormInput) (Request, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Request{}, fmt.Errorf("name is required")
	}

	command := strings.TrimSpace(in.Command)
	if command == "" {
		return Request{}, fmt.Errorf("command is required")
	}

	delay, err := parseDelay(in.Delay)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Name:    name,
		Command: command,
		Delay:   delay,
	}, nil
}

// parseDelay reads the delay field. Blank means start immediately.
func parseDelay(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	delay, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("delay must be a whole number of seconds")
	}
	if delay < 0 {
		return 0, fmt.Errorf("delay cannot be negative")
	}
	return delay, nil
}
