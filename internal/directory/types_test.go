package directory

import (
	"encoding/json"
	"testing"
)

func TestUserHelpers(t *testing.T) {
	cases := []struct {
		name         string
		user         User
		wantName     string
		wantLocation string
		wantInitials string
	}{
		{"full", User{FirstName: "Emily", LastName: "Johnson", City: "Phoenix", State: "Mississippi"}, "Emily Johnson", "Phoenix, Mississippi", "EJ"},
		{"first_only", User{FirstName: " emily ", City: "Phoenix"}, "emily", "Phoenix", "E"},
		{"last_only", User{LastName: "Johnson", State: "Texas"}, "Johnson", "Texas", "J"},
		{"blank", User{}, "", "", "?"},
		{"unicode", User{FirstName: "Élodie", LastName: "Øster"}, "Élodie Øster", "", "ÉØ"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.user.DisplayName(); got != tc.wantName {
				t.Fatalf("DisplayName = %q, want %q", got, tc.wantName)
			}
			if got := tc.user.Location(); got != tc.wantLocation {
				t.Fatalf("Location = %q, want %q", got, tc.wantLocation)
			}
			if got := tc.user.Initials(); got != tc.wantInitials {
				t.Fatalf("Initials = %q, want %q", got, tc.wantInitials)
			}
		})
	}
}

func TestUserListResponse_MissingVersusEmptyUsers(t *testing.T) {
	var missing UserListResponse
	if err := json.Unmarshal([]byte(`{"total": 3}`), &missing); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if missing.Users != nil {
		t.Fatalf("Users = %#v, want nil when the array is absent", missing.Users)
	}

	var empty UserListResponse
	if err := json.Unmarshal([]byte(`{"users": []}`), &empty); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if empty.Users == nil || len(*empty.Users) != 0 {
		t.Fatalf("Users = %#v, want empty non-nil slice", empty.Users)
	}
}

func TestUserPayload_UserTrimsFields(t *testing.T) {
	p := UserPayload{
		FirstName: " Ada ",
		LastName:  "Lovelace ",
		Email:     " ada@example.com",
		Image:     " https://example.com/ada.png ",
		Company:   CompanyPayload{Name: " Analytical Engines "},
		Address:   AddressPayload{City: " London", State: "England "},
	}
	got := p.User()
	want := User{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		ImageURL:    "https://example.com/ada.png",
		CompanyName: "Analytical Engines",
		City:        "London",
		State:       "England",
	}
	if got != want {
		t.Fatalf("User() = %#v, want %#v", got, want)
	}
}
