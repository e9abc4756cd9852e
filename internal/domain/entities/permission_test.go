package entities

import "testing"

func TestPermissionType_Includes(t *testing.T) {
	tests := []struct {
		name     string
		level    PermissionType
		required PermissionType
		expected bool
	}{
		{"Admin cubre Read", PermissionAdmin, PermissionRead, true},
		{"Admin cubre Admin", PermissionAdmin, PermissionAdmin, true},
		{"Write cubre Read", PermissionWrite, PermissionRead, true},
		{"Write cubre Write", PermissionWrite, PermissionWrite, true},
		{"Write no cubre Edit", PermissionWrite, PermissionEdit, false},
		{"Read no cubre Write", PermissionRead, PermissionWrite, false},
		{"None no cubre Read", PermissionNone, PermissionRead, false},
		{"None cubre None", PermissionNone, PermissionNone, true},
		{"Edit cubre Write", PermissionEdit, PermissionWrite, true},
		{"Edit no cubre Admin", PermissionEdit, PermissionAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.Includes(tt.required); got != tt.expected {
				t.Errorf("%s.Includes(%s) = %v, esperaba %v",
					tt.level, tt.required, got, tt.expected)
			}
		})
	}
}

func TestPermissionType_IsValid(t *testing.T) {
	valid := []PermissionType{PermissionNone, PermissionRead, PermissionWrite, PermissionEdit, PermissionAdmin}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("esperaba que %d fuera válido", int(p))
		}
	}

	invalid := []PermissionType{-1, 5, 15, 25, 41, 100}
	for _, p := range invalid {
		if p.IsValid() {
			t.Errorf("esperaba que %d fuera inválido", int(p))
		}
	}
}

func TestParsePermissionType(t *testing.T) {
	t.Run("reconcilia la codificación en texto", func(t *testing.T) {
		for _, p := range []PermissionType{PermissionNone, PermissionRead, PermissionWrite, PermissionEdit, PermissionAdmin} {
			parsed, err := ParsePermissionType(p.String())
			if err != nil {
				t.Fatalf("error inesperado para %q: %v", p.String(), err)
			}
			if parsed != p {
				t.Errorf("esperaba %d, obtuve %d", int(p), int(parsed))
			}
		}
	})

	t.Run("rechaza valores desconocidos", func(t *testing.T) {
		for _, s := range []string{"", "read", "ADMIN", "Full", "10"} {
			if _, err := ParsePermissionType(s); err == nil {
				t.Errorf("esperaba error para %q", s)
			}
		}
	})
}
