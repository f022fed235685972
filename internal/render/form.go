package render

import "net/url"

// Form collects the hidden fields of every slider that has a name, the way
// a browser form would on submit.
type Form struct {
	values url.Values
}

// NewForm returns an empty form.
func NewForm() *Form {
	return &Form{values: url.Values{}}
}

// Set replaces the value of a field.
func (f *Form) Set(name, value string) { f.values.Set(name, value) }

// Get returns the value of a field, or "" when absent.
func (f *Form) Get(name string) string { return f.values.Get(name) }

// Values returns a copy of the submitted fields.
func (f *Form) Values() url.Values {
	out := make(url.Values, len(f.values))
	for k, v := range f.values {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Encode renders the fields as application/x-www-form-urlencoded.
func (f *Form) Encode() string { return f.values.Encode() }

// Mirror returns a Sink that keeps the hidden field of a named slider in
// sync with its value. States without a form name are ignored.
func (f *Form) Mirror() Sink {
	return SinkFunc(func(s State) {
		if s.FormName == "" {
			return
		}
		f.Set(s.FormName, s.FormValue)
	})
}
