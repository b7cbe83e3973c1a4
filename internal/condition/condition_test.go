package condition

import (
	"testing"

	"github.com/pkg/errors"
)

func TestConditionEval(t *testing.T) {
	type testCase struct {
		Script      string
		Env         map[string]any
		Expected    bool
		ExpectError bool
	}

	customer := map[string]any{"name": "jdoe", "email": "jdoe@example.com"}

	testCases := []testCase{
		{
			Script:   "user != nil",
			Env:      map[string]any{"user": nil, "isOwner": false},
			Expected: false,
		},
		{
			Script:   "user != nil",
			Env:      map[string]any{"user": customer, "isOwner": false},
			Expected: true,
		},
		{
			Script:   "user != nil && !isOwner",
			Env:      map[string]any{"user": customer, "isOwner": true},
			Expected: false,
		},
		{
			Script:   `route startsWith "/cars"`,
			Env:      map[string]any{"route": "/cars/42"},
			Expected: true,
		},
		{
			Script:   `user?.email endsWith "@example.com"`,
			Env:      map[string]any{"user": customer},
			Expected: true,
		},
		{
			Script:      "user !=",
			Env:         map[string]any{},
			ExpectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Script, func(t *testing.T) {
			cond := New(tc.Script)

			matched, err := cond.Eval(tc.Env)
			if tc.ExpectError {
				if err == nil {
					t.Fatalf("err: expected error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.Expected, matched; e != g {
				t.Errorf("matched: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestConditionCompile(t *testing.T) {
	if err := New("isOwner").Compile(); err != nil {
		t.Errorf("%+v", errors.WithStack(err))
	}

	if err := New("isOwner &&").Compile(); err == nil {
		t.Errorf("err: expected compilation error")
	}
}
