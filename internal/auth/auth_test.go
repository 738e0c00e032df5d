package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}
	if err := VerifyPassword("correct horse battery staple", hash); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := VerifyPassword("wrong", hash); err == nil {
		t.Fatal("wrong password verified")
	}
}

func TestTokenPairTypesAreSeparated(t *testing.T) {
	tm := NewTokenManager("acc-secret", "ref-secret", "test", time.Minute, time.Hour)
	access, refresh, _, err := tm.GeneratePair("u1", "alice", "member")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := tm.ParseAccess(access)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != "u1" || claims.Username != "alice" || claims.Role != "member" {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := tm.ParseAccess(refresh); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
	if _, err := tm.ParseRefresh(access); err == nil {
		t.Fatal("access token accepted as refresh token")
	}
	if _, err := tm.ParseRefresh(refresh); err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := NewTokenManager("acc-secret", "ref-secret", "test", -time.Minute, -time.Minute)
	access, _, _, err := tm.GeneratePair("u1", "alice", "member")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tm.ParseAccess(access); err == nil {
		t.Fatal("expired access token accepted")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	tm := NewTokenManager("acc-secret", "ref-secret", "test", time.Minute, time.Hour)
	other := NewTokenManager("different", "ref-secret", "test", time.Minute, time.Hour)
	access, _, _, err := other.GeneratePair("u1", "alice", "admin")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tm.ParseAccess(access); err == nil {
		t.Fatal("token signed with another secret accepted")
	}
}
