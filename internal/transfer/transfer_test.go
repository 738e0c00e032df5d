package transfer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ekaraca/gymhub-backend/internal/api/validate"
	"github.com/ekaraca/gymhub-backend/internal/models"
)

func TestUserProfileNeverCarriesPassword(t *testing.T) {
	u := models.User{
		ID:           "u1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$somethingsecret",
	}
	b, err := json.Marshal(NewUserProfile(u))
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	if strings.Contains(s, "password") || strings.Contains(s, "somethingsecret") {
		t.Fatalf("profile leaks password material: %s", s)
	}
}

func TestRegisterInputValidation(t *testing.T) {
	in := RegisterInput{Username: "al", Email: "", Password: "short", Role: models.RoleAdmin}
	err := in.Validate()
	if err == nil {
		t.Fatal("want validation errors")
	}
	fields := err.(validate.Errs).Fields()
	for _, f := range []string{"username", "email", "password", "role"} {
		if len(fields[f]) == 0 {
			t.Errorf("missing error for %s: %v", f, fields)
		}
	}

	bad := RegisterInput{Username: "alice", Email: "not-an-email", Password: "longenough1"}
	err = bad.Validate()
	if err == nil {
		t.Fatal("malformed email accepted")
	}
	if len(err.(validate.Errs).Fields()["email"]) == 0 {
		t.Fatalf("malformed email not reported on the email field: %v", err)
	}

	ok := RegisterInput{Username: "alice", Email: "a@b.c", Password: "longenough1"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if got := ok.ToModel().Role; got != models.RoleMember {
		t.Fatalf("default role = %q", got)
	}
}

func TestUserUpdateValidatesEmail(t *testing.T) {
	bad := "nope"
	err := UserUpdate{Email: &bad}.Validate()
	if err == nil {
		t.Fatal("malformed email accepted")
	}
	if len(err.(validate.Errs).Fields()["email"]) == 0 {
		t.Fatalf("malformed email not reported on the email field: %v", err)
	}
}

func TestUserUpdateAppliesOnlyPresentFields(t *testing.T) {
	u := models.User{Username: "alice", Email: "a@b.c", City: "Hamburg", Phone: "030-1"}
	city := "Berlin"
	UserUpdate{City: &city}.Apply(&u)

	if u.City != "Berlin" {
		t.Fatalf("city = %q", u.City)
	}
	if u.Username != "alice" || u.Email != "a@b.c" || u.Phone != "030-1" {
		t.Fatalf("untouched fields changed: %+v", u)
	}
}

func TestUserUpdateDoesNotApplyRoleOrPassword(t *testing.T) {
	u := models.User{Role: models.RoleMember, PasswordHash: "hash"}
	admin := models.RoleAdmin
	pw := "newpassword1"
	UserUpdate{Role: &admin, Password: &pw}.Apply(&u)

	// the service decides on role and password; Apply must leave them alone
	if u.Role != models.RoleMember {
		t.Fatalf("Apply changed role to %q", u.Role)
	}
	if u.PasswordHash != "hash" {
		t.Fatalf("Apply touched the password hash: %q", u.PasswordHash)
	}
}

func TestGymInputValidation(t *testing.T) {
	err := GymInput{Status: "weird"}.Validate()
	if err == nil {
		t.Fatal("want validation errors")
	}
	fields := err.(validate.Errs).Fields()
	for _, f := range []string{"name", "address", "city", "status"} {
		if len(fields[f]) == 0 {
			t.Errorf("missing error for %s: %v", f, fields)
		}
	}

	g := GymInput{Name: "Iron Temple", Address: "x", City: "Berlin"}.ToModel()
	if g.Status != models.GymPending {
		t.Fatalf("default status = %q", g.Status)
	}
}

func TestGymDetailAmenitiesNeverNull(t *testing.T) {
	b, err := json.Marshal(NewGymDetail(models.Gym{ID: "g1"}))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), `"amenities":null`) {
		t.Fatalf("amenities encoded as null: %s", b)
	}
}

func TestMembershipInputVisitBound(t *testing.T) {
	purchase := models.NewDate(2026, 9, 1)
	expiry := models.NewDate(2027, 9, 1)
	in := MembershipInput{
		PlanType:        models.PlanClassic,
		TotalVisits:     10,
		RemainingVisits: 12,
		Price:           "10.00",
		PurchaseDate:    &purchase,
		ExpiryDate:      &expiry,
	}
	err := in.Validate()
	if err == nil {
		t.Fatal("remaining > total must fail")
	}
	if len(err.(validate.Errs).Fields()["remaining_visits"]) == 0 {
		t.Fatalf("wrong fields: %v", err)
	}

	in.RemainingVisits = 10
	if err := in.Validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if got := in.ToModel().Status; got != models.MembershipActive {
		t.Fatalf("default status = %q", got)
	}
}

func TestMembershipUpdateRechecksBound(t *testing.T) {
	m := models.Membership{TotalVisits: 10, RemainingVisits: 5}
	more := 11
	if err := (MembershipUpdate{RemainingVisits: &more}).Apply(&m); err == nil {
		t.Fatal("raising remaining past total must fail")
	}

	m = models.Membership{TotalVisits: 10, RemainingVisits: 10}
	smallerTotal := 4
	if err := (MembershipUpdate{TotalVisits: &smallerTotal}).Apply(&m); err == nil {
		t.Fatal("lowering total below remaining must fail")
	}
}
