package models

import "testing"

func TestUserValidate(t *testing.T) {
	u := User{Username: "alice", Email: "a@b.c", Role: RoleMember}
	if err := u.Validate(); err != nil {
		t.Fatalf("valid user rejected: %v", err)
	}

	u.Username = "al"
	if err := u.Validate(); err == nil {
		t.Fatal("short username accepted")
	}
	u.Username = "alice"

	u.Email = "nope"
	if err := u.Validate(); err == nil {
		t.Fatal("malformed email accepted")
	}
	u.Email = "a@b.c"

	u.Role = Role("superuser")
	if err := u.Validate(); err == nil {
		t.Fatal("unknown role accepted")
	}
}

func TestUserValidateDoesNotMutate(t *testing.T) {
	u := User{Username: "alice", Email: "a@b.c"}
	if err := u.Validate(); err == nil {
		t.Fatal("empty role accepted")
	}
	if u.Role != "" {
		t.Fatalf("Validate set role to %q", u.Role)
	}
}
