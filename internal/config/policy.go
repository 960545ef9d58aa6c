package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPolicyFile is the default redaction policy file name.
const DefaultPolicyFile = ".logscrub.yaml"

// ErrPolicyNotFound is returned when the redaction policy file does not
// exist. Callers should treat this as "use the built-in defaults" unless
// the path was explicitly specified by the user.
var ErrPolicyNotFound = errors.New("redaction policy file not found")

// Policy describes the redaction policy loaded from a YAML file.
// Zero-value sections fall back to the built-in defaults, so a policy file
// may override just the field list, just the token, or any combination.
//
// Example policy file (.logscrub.yaml):
//
//	fields:
//	  - name
//	  - email
//	  - credit_card
//	redaction: "[MASKED]"
//	separator: ";"
type Policy struct {
	// Fields is the list of field names to redact.
	// Empty means the built-in PII field list.
	Fields []string `yaml:"fields"`

	// Redaction is the replacement token. Empty means "***"; an empty
	// replacement token cannot be expressed through the policy file.
	Redaction string `yaml:"redaction"`

	// Separator is the segment delimiter. Empty means ";".
	Separator string `yaml:"separator"`
}

// DefaultPolicy returns the built-in redaction policy: the fixed PII
// field list, the "***" token, and the ";" separator.
func DefaultPolicy() *Policy {
	return &Policy{
		Fields:    PIIFields(),
		Redaction: DefaultRedaction,
		Separator: DefaultSeparator,
	}
}

// LoadPolicy loads a redaction policy from a YAML file and fills any
// missing sections with the built-in defaults.
// If the file does not exist, it returns ErrPolicyNotFound; callers that
// searched for an optional file should fall back to DefaultPolicy.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided policy path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	if len(p.Fields) == 0 {
		p.Fields = PIIFields()
	}
	if p.Redaction == "" {
		p.Redaction = DefaultRedaction
	}
	if p.Separator == "" {
		p.Separator = DefaultSeparator
	}

	return &p, nil
}

// FindPolicyFile searches for the redaction policy file in the following order:
// 1. If policyPath is specified, use it directly
// 2. Look for .logscrub.yaml in the current directory
// 3. Look for .logscrub.yaml in the user's home directory
//
// Returns the path to the policy file if found, or empty string if not found.
func FindPolicyFile(policyPath string) string {
	// If explicit path is provided, use it
	if policyPath != "" {
		if _, err := os.Stat(policyPath); err == nil {
			return policyPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdPolicy := filepath.Join(cwd, DefaultPolicyFile)
		if _, err := os.Stat(cwdPolicy); err == nil {
			return cwdPolicy
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homePolicy := filepath.Join(home, DefaultPolicyFile)
		if _, err := os.Stat(homePolicy); err == nil {
			return homePolicy
		}
	}

	return ""
}
