package chirp

import "testing"

func TestValidUsername(t *testing.T) {
	valid := []string{"alice", "bob_42", "a.b-c", "X", "1234"}
	for _, name := range valid {
		if !ValidUsername(name) {
			t.Errorf("ValidUsername(%q) = false, want true", name)
		}
	}

	invalid := []string{"", "has space", "semi;colon", "new\nline", "tab\tname", "slash/name", "ünïcode"}
	for _, name := range invalid {
		if ValidUsername(name) {
			t.Errorf("ValidUsername(%q) = true, want false", name)
		}
	}
}
