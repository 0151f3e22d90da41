package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+14155552671", "0812345678", "62-812-3456-789", "+999999999"}
	invalid := []string{"12345", "abcdefghij", "", "+12 34"}
	for _, phone := range valid {
		if !IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhoneNumber(phone) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", phone)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "2023/01/01", ""}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"09:00", true},
		{"23:59:59", true},
		{"00:00", true},
		{"24:00", false},
		{"9am", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := IsValidClockTime(c.input)
		if ok != c.want {
			t.Errorf("IsValidClockTime(%q) = %v, want %v", c.input, ok, c.want)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"PRESENT", "ABSENT", "LATE"}
	if !IsInSlice("LATE", slice) {
		t.Error("IsInSlice(LATE) = false, want true")
	}
	if IsInSlice("HOLIDAY", slice) {
		t.Error("IsInSlice(HOLIDAY) = true, want false")
	}
}
