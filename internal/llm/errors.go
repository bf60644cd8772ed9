package llm

import "fmt"

// MissingCredentialError indicates the generation backend credential was not
// configured. It surfaces as a per-job configuration error, never as a crash
// of the worker loop.
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("generation backend credential is not configured (set %s)", e.EnvVar)
}
