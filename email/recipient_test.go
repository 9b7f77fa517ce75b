package email

import "testing"

func TestInterpretRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		defaultName string
		token       string
		role        Role
		want        Recipient
	}{
		{
			name:        "bare address keeps default name",
			defaultName: "Bob",
			token:       "alice@x.com",
			role:        RoleTo,
			want:        Recipient{Name: "Bob", Address: "alice@x.com", Role: RoleTo},
		},
		{
			name:        "embedded name wins",
			defaultName: "Bob",
			token:       "Alice <alice@x.com>",
			role:        RoleTo,
			want:        Recipient{Name: "Alice", Address: "alice@x.com", Role: RoleTo},
		},
		{
			name:        "bare address without default name",
			defaultName: "",
			token:       "carol@y.com",
			role:        RoleCc,
			want:        Recipient{Address: "carol@y.com", Role: RoleCc},
		},
		{
			name:        "malformed token degrades to literal address",
			defaultName: "Dave",
			token:       "not an address",
			role:        RoleBcc,
			want:        Recipient{Name: "Dave", Address: "not an address", Role: RoleBcc},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := InterpretRecipient(tt.defaultName, tt.token, tt.role)
			if !got.Equal(tt.want) {
				t.Errorf("InterpretRecipient(%q, %q, %s): got %+v, want %+v",
					tt.defaultName, tt.token, tt.role, got, tt.want)
			}
		})
	}
}

func TestNewRecipient(t *testing.T) {
	t.Parallel()

	r, err := NewRecipient("Alice", "alice@x.com", RoleTo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "Alice" || r.Address != "alice@x.com" || r.Role != RoleTo {
		t.Errorf("unexpected recipient: %+v", r)
	}

	if _, err := NewRecipient("Alice", "", RoleTo); err == nil {
		t.Error("expected error for empty address, got nil")
	}
}

func TestRecipientString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    Recipient
		want string
	}{
		{Recipient{Name: "Alice", Address: "alice@x.com"}, "Alice <alice@x.com>"},
		{Recipient{Address: "alice@x.com"}, "alice@x.com"},
	}
	for _, tt := range tests {
		tt := tt
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String(): got %q, want %q", got, tt.want)
		}
	}
}
