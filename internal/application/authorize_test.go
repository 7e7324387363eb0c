package application

import "testing"

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		owner   string
		want    bool
	}{
		{"owner matches", "user-1", "user-1", true},
		{"different user", "user-2", "user-1", false},
		{"empty subject", "", "user-1", false},
		{"both empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Authorize(tc.subject, tc.owner); got != tc.want {
				t.Fatalf("Authorize(%q, %q) = %v, want %v", tc.subject, tc.owner, got, tc.want)
			}
		})
	}
}
