package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

func TestLoginRequest_NormalizeKeepsPassword(t *testing.T) {
	req := LoginRequest{Username: "  alice  ", Password: " p&ss<1234> "}
	req.Normalize()

	assert.Equal(t, "alice", req.Username)
	assert.Equal(t, " p&ss<1234> ", req.Password)
}

func TestCardIDValidator(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"0415918ACB4220", true},
		{"04:15:91:8a:cb:42:20", true},
		{"DEADBEEF", true},
		{"04159", false},
		{"041", false},
		{"zz15918ACB4220", false},
		{"04 15 91 8A", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&TapRequest{CardID: tt.id})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestDecimalAmountValidator(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"10", true},
		{"1.50", true},
		{"0.01", true},
		{"0", false},
		{"-5", false},
		{"1.005", false},
		{"2.500", true},
		{"ten", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&CreditRequest{Amount: tt.amount})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestHistoryQueryBounds(t *testing.T) {
	assert.NoError(t, binding.Validator.ValidateStruct(&HistoryQuery{}))
	assert.NoError(t, binding.Validator.ValidateStruct(&HistoryQuery{Limit: 500}))
	assert.Error(t, binding.Validator.ValidateStruct(&HistoryQuery{Limit: 501}))
}
