package validator_test

import (
	"strings"
	"testing"

	"campnest/shared/failure"
	"campnest/shared/validator"
)

type createRequest struct {
	Name   string `json:"name" validate:"required,min=3,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Rating int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid request",
			body:    `{"name": "Pine Hollow", "email": "owner@example.com", "rating": 4}`,
			wantErr: false,
		},
		{
			name:    "invalid json",
			body:    `{"name": "Pine Hollow"`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"email": "owner@example.com"}`,
			wantErr: true,
		},
		{
			name:    "name too short",
			body:    `{"name": "ab", "email": "owner@example.com"}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"name": "Pine Hollow", "email": "not-an-email"}`,
			wantErr: true,
		},
		{
			name:    "rating out of range",
			body:    `{"name": "Pine Hollow", "email": "owner@example.com", "rating": 6}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest{}

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && failure.GetCode(err) != 400 {
				t.Errorf("expected a bad request failure, got code %d", failure.GetCode(err))
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	valid := createRequest{Name: "Pine Hollow", Email: "owner@example.com"}
	if err := validator.ValidateStruct(&valid); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}

	invalid := createRequest{Name: "Pine Hollow", Email: "nope"}
	if err := validator.ValidateStruct(&invalid); err == nil {
		t.Error("expected error for invalid struct")
	}
}

func TestNotBlank(t *testing.T) {
	type titled struct {
		Title string `validate:"notblank"`
	}

	blank := titled{Title: "   "}
	if err := validator.ValidateStruct(&blank); err == nil {
		t.Error("expected error for blank title")
	}

	filled := titled{Title: "Lakeside"}
	if err := validator.ValidateStruct(&filled); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("owner@example.com", "email"); err != nil {
		t.Errorf("expected valid email, got %v", err)
	}

	if err := validator.ValidateVar("nope", "email"); err == nil {
		t.Error("expected error for invalid email")
	}
}
