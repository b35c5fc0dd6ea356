package metadata

import "fmt"

// entryFields covers the scalar and string-list fields of an entry
// document. The contacts list holds objects, so it is checked
// separately by checkContacts.
var entryFields = []Field{
	{Name: "entry_id", Validator: ValidateSymbolicIdent},
	{Name: "challenge_id", Validator: ValidateSymbolicIdent},
	{Name: "team_name"},
	{Name: "experiment_ids", List: true, Validator: ValidateSymbolicIdent},
	{Name: "notes", Optional: true, AllowEmpty: true},
}

var contactFields = []Field{
	{Name: "name"},
	{Name: "email", Validator: ValidateEmail},
	{Name: "notes", Optional: true, AllowEmpty: true},
}

// ValidateEntry validates a decoded entry metadata document.
func ValidateEntry(obj map[string]any) error {
	if err := CheckFromDefs("entry", entryFields, obj); err != nil {
		return err
	}
	return checkContacts(obj)
}

func checkContacts(obj map[string]any) error {
	val, ok := obj["contacts"]
	if !ok {
		return &FieldError{Desc: "entry", Field: "contacts", Reason: "is required"}
	}
	items, ok := val.([]any)
	if !ok {
		return &FieldError{Desc: "entry", Field: "contacts", Reason: "must be a list"}
	}
	if len(items) == 0 {
		return &FieldError{Desc: "entry", Field: "contacts", Reason: "must be a non-empty list"}
	}
	for i, item := range items {
		contact, ok := item.(map[string]any)
		if !ok {
			return &FieldError{
				Desc:   "entry",
				Field:  "contacts",
				Reason: fmt.Sprintf("element [%d] must be an object", i),
			}
		}
		desc := fmt.Sprintf("entry contacts[%d]", i)
		if err := CheckFromDefs(desc, contactFields, contact); err != nil {
			return err
		}
	}
	return nil
}
