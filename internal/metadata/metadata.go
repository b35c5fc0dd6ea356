// Package metadata validates LRGASP submission metadata documents.
// Validation is driven by field definition tables applied to the
// decoded document, so each metadata kind is a list of Field values
// plus any structural checks the generic machinery cannot express.
package metadata

import "fmt"

// Field specifies basic validation for one metadata field.
// Validator, when set, checks the value form; for list fields it is
// applied to every element.
type Field struct {
	Name       string
	AllowEmpty bool
	Optional   bool
	List       bool
	Validator  func(string) error
}

// FieldError reports a metadata field that failed validation. Desc
// names the enclosing document or object so nested failures read as
// e.g. "entry contacts[1] field email".
type FieldError struct {
	Desc   string
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s field %s is not valid", e.Desc, e.Field)
	}
	return fmt.Sprintf("%s field %s %s", e.Desc, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return e.Err }

// LoadError reports a metadata document that could not be read or
// decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("parse of metadata failed: %s", e.Path)
}

func (e *LoadError) Unwrap() error { return e.Err }

// CheckFromDefs applies every field definition to the decoded document
// obj, returning the first failure.
func CheckFromDefs(desc string, fields []Field, obj map[string]any) error {
	for _, f := range fields {
		if err := checkField(desc, f, obj); err != nil {
			return err
		}
	}
	return nil
}

func checkField(desc string, f Field, obj map[string]any) error {
	val, ok := obj[f.Name]
	if !ok {
		if f.Optional {
			return nil
		}
		return &FieldError{Desc: desc, Field: f.Name, Reason: "is required"}
	}
	if f.List {
		return checkList(desc, f, val)
	}
	return checkScalar(desc, f, val)
}

func checkScalar(desc string, f Field, val any) error {
	s, ok := val.(string)
	if !ok {
		return &FieldError{Desc: desc, Field: f.Name, Reason: "must be a string"}
	}
	if s == "" {
		if f.AllowEmpty {
			return nil
		}
		return &FieldError{Desc: desc, Field: f.Name, Reason: "must be non-empty"}
	}
	if f.Validator != nil {
		if err := f.Validator(s); err != nil {
			return &FieldError{Desc: desc, Field: f.Name, Err: err}
		}
	}
	return nil
}

func checkList(desc string, f Field, val any) error {
	items, ok := val.([]any)
	if !ok {
		return &FieldError{Desc: desc, Field: f.Name, Reason: "must be a list"}
	}
	if len(items) == 0 && !f.AllowEmpty {
		return &FieldError{Desc: desc, Field: f.Name, Reason: "must be a non-empty list"}
	}
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return &FieldError{
				Desc:   desc,
				Field:  f.Name,
				Reason: fmt.Sprintf("element [%d] must be a string", i),
			}
		}
		if s == "" && !f.AllowEmpty {
			return &FieldError{
				Desc:   desc,
				Field:  f.Name,
				Reason: fmt.Sprintf("element [%d] must be non-empty", i),
			}
		}
		if f.Validator != nil {
			if err := f.Validator(s); err != nil {
				return &FieldError{Desc: desc, Field: f.Name, Err: err}
			}
		}
		if _, dup := seen[s]; dup {
			return &FieldError{
				Desc:   desc,
				Field:  f.Name,
				Reason: fmt.Sprintf("duplicate value %q", s),
			}
		}
		seen[s] = struct{}{}
	}
	return nil
}
