package session

import "strings"

// Choice is one of the interruption reasons offered to the user.
type Choice string

const (
	Legitimate Choice = "Legitimate"
	Distracted Choice = "Distracted"
	Avoidance  Choice = "Avoidance"
	Other      Choice = "Other"
)

// DefaultChoice is preselected when the reason prompt opens.
const DefaultChoice = Distracted

// Choices lists the interruption reasons in display order.
var Choices = []Choice{Legitimate, Distracted, Avoidance, Other}

// Resolve maps a reason choice to the string stored with an interrupted
// session. Free text is only consulted for Other and may be blank.
func Resolve(choice Choice, freeText string) string {
	if choice == Other {
		return strings.TrimSpace(freeText)
	}

	return string(choice)
}
