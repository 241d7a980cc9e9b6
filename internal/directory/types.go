package directory

import "strings"

// User is a directory entry as the browser sees it. Values are never
// modified after FetchAll returns them.
type User struct {
	FirstName   string
	LastName    string
	Email       string
	ImageURL    string
	CompanyName string
	City        string
	State       string
}

// DisplayName returns "First Last", skipping blank parts.
func (u User) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// Location returns "City, State", or whichever half is present.
func (u User) Location() string {
	city := strings.TrimSpace(u.City)
	state := strings.TrimSpace(u.State)
	switch {
	case city != "" && state != "":
		return city + ", " + state
	case city != "":
		return city
	default:
		return state
	}
}

// Initials returns up to two upper-case letters used as the card thumbnail.
func (u User) Initials() string {
	var b strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r := []rune(part)[0]
		b.WriteString(strings.ToUpper(string(r)))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}

// UserListResponse mirrors the /users payload. Users is a pointer so a body
// without the array can be told apart from an empty one.
type UserListResponse struct {
	Users *[]UserPayload `json:"users"`
	Total int            `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

// UserPayload is one entry of the users array. Fields the browser does not
// display are not decoded.
type UserPayload struct {
	ID        int64          `json:"id"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	Email     string         `json:"email"`
	Image     string         `json:"image"`
	Company   CompanyPayload `json:"company"`
	Address   AddressPayload `json:"address"`
}

// CompanyPayload is the nested company object.
type CompanyPayload struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Title      string `json:"title"`
}

// AddressPayload is the nested address object.
type AddressPayload struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// User projects the payload into the browser's record type.
func (p UserPayload) User() User {
	return User{
		FirstName:   strings.TrimSpace(p.FirstName),
		LastName:    strings.TrimSpace(p.LastName),
		Email:       strings.TrimSpace(p.Email),
		ImageURL:    strings.TrimSpace(p.Image),
		CompanyName: strings.TrimSpace(p.Company.Name),
		City:        strings.TrimSpace(p.Address.City),
		State:       strings.TrimSpace(p.Address.State),
	}
}
