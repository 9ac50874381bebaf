// Package audit produces the operator-freeze acknowledgment shown by the
// dashboard and the freeze command.
//
// Acknowledging a district is purely local: nothing is sent anywhere and no
// operator record changes. The result depends only on the input, so calling
// Acknowledge repeatedly with the same district yields the same value.
package audit

import (
	"fmt"
	"strings"
)

// Unspecified stands in for a blank district name.
const Unspecified = "(unspecified)"

// Acknowledgment is the notice produced for a freeze request.
type Acknowledgment struct {
	District string
	Message  string
}

// Acknowledge returns the freeze acknowledgment for district. Surrounding
// whitespace is trimmed; a blank district is reported as Unspecified.
func Acknowledge(district string) Acknowledgment {
	district = strings.TrimSpace(district)
	if district == "" {
		district = Unspecified
	}

	return Acknowledgment{
		District: district,
		Message:  fmt.Sprintf("ACTION TAKEN: Operator IDs in %s have been frozen for audit.", district),
	}
}

// String returns the acknowledgment message.
func (a Acknowledgment) String() string {
	return a.Message
}
