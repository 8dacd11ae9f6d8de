package domain

import "testing"

func TestNormalizeAuthority(t *testing.T) {
	if got := NormalizeAuthority("ADMIN"); got != "ROLE_ADMIN" {
		t.Fatalf("expected ROLE_ADMIN, got %s", got)
	}
	if got := NormalizeAuthority("ROLE_ADMIN"); got != "ROLE_ADMIN" {
		t.Fatalf("normalization not idempotent, got %s", got)
	}
	if NormalizeAuthority("ADMIN") != NormalizeAuthority("ROLE_ADMIN") {
		t.Fatalf("raw and prefixed forms must normalize identically")
	}
	if got := RoleCareSeeker.Authority(); got != "ROLE_CARE_SEEKER" {
		t.Fatalf("unexpected authority: %s", got)
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("active"); err != nil || s != StatusActive {
		t.Fatalf("expected ACTIVE, got %v %v", s, err)
	}
	if s, err := ParseStatus("DEACTIVATED"); err != nil || s != StatusDeactivated {
		t.Fatalf("expected DEACTIVATED, got %v %v", s, err)
	}
	if _, err := ParseStatus("BANNED"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if _, err := ParseStatus(""); err == nil {
		t.Fatalf("expected error for empty status")
	}
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"CARE_SEEKER", "CAREGIVER", "ADMIN"} {
		if _, err := ParseRole(raw); err != nil {
			t.Fatalf("valid role %s rejected: %v", raw, err)
		}
	}
	if _, err := ParseRole("SUPERUSER"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestUserHasRole(t *testing.T) {
	u := &User{Roles: []Role{RoleAdmin}}
	if !u.HasRole(RoleAdmin) {
		t.Fatalf("expected admin role")
	}
	// no hierarchy: admin does not imply caregiver
	if u.HasRole(RoleCaregiver) {
		t.Fatalf("admin must not imply caregiver")
	}
}

func TestUserIsActive(t *testing.T) {
	if !(&User{}).IsActive() {
		t.Fatalf("missing status must read as active")
	}
	if (&User{Status: StatusDeactivated}).IsActive() {
		t.Fatalf("deactivated user reported active")
	}
}
