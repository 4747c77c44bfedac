package clock

import (
	"errors"
	"testing"
	"time"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "whole hours", input: "9 AM to 5 PM", want: "09:00 to 17:00"},
		{name: "noon to midnight", input: "12:00 PM to 12:00 AM", want: "12:00 to 00:00"},
		{name: "overnight with minutes", input: "10:30 PM to 8:50 AM", want: "22:30 to 08:50"},
		{name: "overnight whole hours", input: "10 PM to 8 AM", want: "22:00 to 08:00"},
		{name: "mixed minutes", input: "9 AM to 5:30 PM", want: "09:00 to 17:30"},
		{name: "leading zero hour", input: "09:05 AM to 05 PM", want: "09:05 to 17:00"},
		{name: "midnight to noon", input: "12 AM to 12 PM", want: "00:00 to 12:00"},
		{name: "one pm", input: "1 PM to 11:59 PM", want: "13:00 to 23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input)
			if err != nil {
				t.Fatalf("Convert(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "hour above 12", input: "13 PM to 5 PM", wantErr: ErrRange},
		{name: "minute 60", input: "9:60 AM to 5:00 PM", wantErr: ErrRange},
		{name: "end minute 99", input: "9:00 AM to 5:99 PM", wantErr: ErrRange},
		{name: "hour zero", input: "0 AM to 5 PM", wantErr: ErrRange},
		{name: "end hour above 12", input: "9 AM to 17 PM", wantErr: ErrRange},
		{name: "lowercase meridiem", input: "9am to 5pm", wantErr: ErrFormat},
		{name: "hyphen separator", input: "9 AM - 5 PM", wantErr: ErrFormat},
		{name: "no separator", input: "9 AM 5 PM", wantErr: ErrFormat},
		{name: "single digit minute", input: "9:5 AM to 5 PM", wantErr: ErrFormat},
		{name: "three digit hour", input: "100 AM to 5 PM", wantErr: ErrFormat},
		{name: "missing meridiem", input: "9 to 5 PM", wantErr: ErrFormat},
		{name: "trailing text", input: "9 AM to 5 PM please", wantErr: ErrFormat},
		{name: "leading space", input: " 9 AM to 5 PM", wantErr: ErrFormat},
		{name: "empty", input: "", wantErr: ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Convert(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Convert(%q) error %v does not wrap ErrInvalidInput", tt.input, err)
			}
			if got != "" {
				t.Errorf("Convert(%q) = %q on error, want empty", tt.input, got)
			}
		})
	}
}

func TestConvert_ErrorKindsAreDistinct(t *testing.T) {
	_, err := Convert("13 PM to 5 PM")
	if errors.Is(err, ErrFormat) {
		t.Errorf("range error should not match ErrFormat: %v", err)
	}

	_, err = Convert("9am to 5pm")
	if errors.Is(err, ErrRange) {
		t.Errorf("format error should not match ErrRange: %v", err)
	}
}

func TestParse(t *testing.T) {
	r, err := Parse("10:30 PM to 8:50 AM")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := TimeRange{
		Start: Time{Hour: 22, Minute: 30},
		End:   Time{Hour: 8, Minute: 50},
	}
	if r != want {
		t.Errorf("Parse() = %+v, want %+v", r, want)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		field clockField
		want  Time
	}{
		{name: "12 AM", field: clockField{Hour: 12, Meridiem: AM}, want: Time{Hour: 0}},
		{name: "1 AM", field: clockField{Hour: 1, Meridiem: AM}, want: Time{Hour: 1}},
		{name: "11 AM", field: clockField{Hour: 11, Meridiem: AM}, want: Time{Hour: 11}},
		{name: "12 PM", field: clockField{Hour: 12, Meridiem: PM}, want: Time{Hour: 12}},
		{name: "1 PM", field: clockField{Hour: 1, Meridiem: PM}, want: Time{Hour: 13}},
		{name: "11 PM", field: clockField{Hour: 11, Meridiem: PM}, want: Time{Hour: 23}},
		{
			name:  "minute kept",
			field: clockField{Hour: 7, Minute: 45, HasMinute: true, Meridiem: PM},
			want:  Time{Hour: 19, Minute: 45},
		},
		{
			name:  "absent minute defaults to zero",
			field: clockField{Hour: 7, Minute: 45, HasMinute: false, Meridiem: PM},
			want:  Time{Hour: 19, Minute: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.field.normalize()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRoundTripThrough24HourParser(t *testing.T) {
	inputs := []string{
		"9 AM to 5 PM",
		"12:00 PM to 12:00 AM",
		"10:30 PM to 8:50 AM",
		"12:59 AM to 11:01 PM",
		"1 AM to 1 PM",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			parsed, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", input, err)
			}
			out, err := Convert(input)
			if err != nil {
				t.Fatalf("Convert(%q): %v", input, err)
			}
			reparsed, err := ParseRange24(out)
			if err != nil {
				t.Fatalf("ParseRange24(%q): %v", out, err)
			}
			if reparsed != parsed {
				t.Errorf("round trip of %q = %+v, want %+v", input, reparsed, parsed)
			}
			if reparsed.String() != out {
				t.Errorf("reformatted %q = %q", out, reparsed.String())
			}
		})
	}
}

func TestTimeRangeDuration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{name: "workday", input: "9 AM to 5 PM", want: 8 * time.Hour},
		{name: "overnight", input: "10 PM to 6 AM", want: 8 * time.Hour},
		{name: "with minutes", input: "9:15 AM to 10:45 AM", want: 90 * time.Minute},
		{name: "same start and end", input: "9 AM to 9 AM", want: 24 * time.Hour},
		{name: "midnight to noon", input: "12 AM to 12 PM", want: 12 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got := r.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeridiemString(t *testing.T) {
	if AM.String() != "AM" {
		t.Errorf("AM.String() = %q", AM.String())
	}
	if PM.String() != "PM" {
		t.Errorf("PM.String() = %q", PM.String())
	}
}
