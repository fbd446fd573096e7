package middleware

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type rfidHolder struct {
	RFID string `json:"RFID" validate:"rfid"`
}

type positionHolder struct {
	ID      string `json:"positionID" validate:"position_id"`
	Segment string `json:"aisleID" validate:"position_segment"`
}

type dateHolder struct {
	Date string `json:"issueDate" validate:"order_date"`
}

func TestValidateRFID(t *testing.T) {
	v := validator.New()
	registerCustomValidators(v)

	tests := []struct {
		name    string
		rfid    string
		wantErr bool
	}{
		{name: "valid 32 digits", rfid: "12345678901234567890123456789012"},
		{name: "too short", rfid: "12345", wantErr: true},
		{name: "too long", rfid: "123456789012345678901234567890123", wantErr: true},
		{name: "non digit", rfid: "1234567890123456789012345678901a", wantErr: true},
		{name: "empty", rfid: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(rfidHolder{RFID: tt.rfid})
			if (err != nil) != tt.wantErr {
				t.Errorf("validate rfid %q: err = %v, wantErr %v", tt.rfid, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePosition(t *testing.T) {
	v := validator.New()
	registerCustomValidators(v)

	tests := []struct {
		name    string
		id      string
		segment string
		wantErr bool
	}{
		{name: "valid", id: "800234543412", segment: "8002"},
		{name: "short id", id: "80023454341", segment: "8002", wantErr: true},
		{name: "short segment", id: "800234543412", segment: "800", wantErr: true},
		{name: "letters", id: "80023454341a", segment: "8002", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(positionHolder{ID: tt.id, Segment: tt.segment})
			if (err != nil) != tt.wantErr {
				t.Errorf("validate position %q/%q: err = %v, wantErr %v", tt.id, tt.segment, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOrderDate(t *testing.T) {
	v := validator.New()
	registerCustomValidators(v)

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "date only", date: "2021/11/29"},
		{name: "date and time", date: "2021/11/29 09:33"},
		{name: "wrong separator", date: "2021-11-29", wantErr: true},
		{name: "with seconds", date: "2021/11/29 09:33:12", wantErr: true},
		{name: "future", date: "2099/01/01", wantErr: true},
		{name: "garbage", date: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(dateHolder{Date: tt.date})
			if (err != nil) != tt.wantErr {
				t.Errorf("validate date %q: err = %v, wantErr %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorFormatter(t *testing.T) {
	v := validator.New()
	registerCustomValidators(v)

	err := v.Struct(rfidHolder{RFID: "123"})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	fields := ValidationErrorFormatter(err)
	if fields["RFID"] != "must be a 32 digit RFID" {
		t.Errorf(`fields["RFID"] = %q`, fields["RFID"])
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  abc\x00def  "); got != "abcdef" {
		t.Errorf("SanitizeString = %q, want abcdef", got)
	}
}
