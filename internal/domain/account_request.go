package domain

// AccountRequest is a create request that passed validation. Its fields are
// unexported so a value can only come out of the validator.
type AccountRequest struct {
	name    string
	website string
	comment *string
}

func NewAccountRequest(name, website string, comment *string) *AccountRequest {
	req := &AccountRequest{name: name, website: website}
	if comment != nil {
		c := *comment
		req.comment = &c
	}
	return req
}

func (r *AccountRequest) Name() string {
	return r.name
}

func (r *AccountRequest) Website() string {
	return r.website
}

// Comment reports the optional comment and whether one was supplied.
func (r *AccountRequest) Comment() (string, bool) {
	if r.comment == nil {
		return "", false
	}
	return *r.comment, true
}
