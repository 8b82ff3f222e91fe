// internal/domain/homework/verdict.go
package homework

import "fmt"

// Verdicts maps every known status code to the sentence sent to the chat.
var Verdicts = map[string]string{
	StatusApproved:  "Work checked: reviewer liked everything. Hooray!",
	StatusReviewing: "Work taken for review by the reviewer.",
	StatusRejected:  "Work checked: reviewer has remarks.",
}

// Interpret turns a homework entry into the notification text.
func Interpret(rec Record) (string, error) {
	for _, key := range []string{KeyName, KeyStatus} {
		if _, ok := rec[key]; !ok {
			return "", NewError(KindMissingField, "key `%s` is missing in homework entry", key)
		}
	}

	name := fmt.Sprint(rec[KeyName])
	status, _ := rec[KeyStatus].(string)
	verdict, ok := Verdicts[status]
	if !ok {
		return "", NewError(KindUnknownStatus, "unknown homework status: %v", rec[KeyStatus])
	}
	return fmt.Sprintf(`Changed status of check for "%s". %s`, name, verdict), nil
}
