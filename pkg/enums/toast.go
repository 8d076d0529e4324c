package enums

import "fmt"

// ToastSeverity maps to the severity attached to transient user notifications.
type ToastSeverity string

const (
	ToastSeveritySuccess ToastSeverity = "success"
	ToastSeverityError   ToastSeverity = "error"
	ToastSeverityInfo    ToastSeverity = "info"
)

var validToastSeverities = []ToastSeverity{
	ToastSeveritySuccess,
	ToastSeverityError,
	ToastSeverityInfo,
}

// IsValid checks whether the given severity matches the canonical enum.
func (s ToastSeverity) IsValid() bool {
	for _, candidate := range validToastSeverities {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseToastSeverity converts raw strings into ToastSeverity.
func ParseToastSeverity(value string) (ToastSeverity, error) {
	for _, candidate := range validToastSeverities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid toast severity %q", value)
}
