package navbar

import "testing"

func TestUserDisplayFields(t *testing.T) {
	type testCase struct {
		Name            string
		User            *User
		ExpectedName    string
		ExpectedEmail   string
		ExpectedInitial string
	}

	testCases := []testCase{
		{
			Name:            "NoUser",
			User:            nil,
			ExpectedName:    DefaultDisplayName,
			ExpectedEmail:   DefaultDisplayEmail,
			ExpectedInitial: "U",
		},
		{
			Name:            "EmptyUser",
			User:            &User{},
			ExpectedName:    DefaultDisplayName,
			ExpectedEmail:   DefaultDisplayEmail,
			ExpectedInitial: "U",
		},
		{
			Name:            "NameFirst",
			User:            &User{Name: "alice", FullName: "Alice Martin", Username: "amartin", Email: "alice@example.com"},
			ExpectedName:    "alice",
			ExpectedEmail:   "alice@example.com",
			ExpectedInitial: "A",
		},
		{
			Name:            "FullNameBeforeUsername",
			User:            &User{FullName: "bob Stone", Username: "bstone"},
			ExpectedName:    "bob Stone",
			ExpectedEmail:   DefaultDisplayEmail,
			ExpectedInitial: "B",
		},
		{
			Name:            "UsernameOnly",
			User:            &User{Username: "émile"},
			ExpectedName:    "émile",
			ExpectedEmail:   DefaultDisplayEmail,
			ExpectedInitial: "É",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.ExpectedName, tc.User.DisplayName(); e != g {
				t.Errorf("DisplayName(): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedEmail, tc.User.DisplayEmail(); e != g {
				t.Errorf("DisplayEmail(): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedInitial, tc.User.AvatarInitial(); e != g {
				t.Errorf("AvatarInitial(): expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestRoleLabel(t *testing.T) {
	if e, g := RoleLabelOwner, RoleLabel(true); e != g {
		t.Errorf("RoleLabel(true): expected '%v', got '%v'", e, g)
	}

	if e, g := RoleLabelCustomer, RoleLabel(false); e != g {
		t.Errorf("RoleLabel(false): expected '%v', got '%v'", e, g)
	}
}
