package model

import "testing"

func TestUserRoleValid(t *testing.T) {
	for _, role := range []UserRole{RoleAdmin, RoleAnalyst, RoleExecutor} {
		if !role.Valid() {
			t.Fatalf("%s should be valid", role)
		}
	}
	for _, role := range []UserRole{"", "admin", "MANAGER"} {
		if role.Valid() {
			t.Fatalf("%q should be invalid", role)
		}
	}
}
