package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/service"
)

func TestValidateClientInput(t *testing.T) {
	t.Parallel()

	valid := entity.ClientInput{
		FullName:    "John Doe",
		Email:       "john@example.com",
		Description: "vip",
	}

	tests := []struct {
		name       string
		input      entity.ClientInput
		wantFields []string
	}{
		{
			name:  "valid",
			input: valid,
		},
		{
			name: "full name too short",
			input: entity.ClientInput{
				FullName:    "Jo",
				Email:       valid.Email,
				Description: valid.Description,
			},
			wantFields: []string{"fullName"},
		},
		{
			name: "full name empty",
			input: entity.ClientInput{
				Email:       valid.Email,
				Description: valid.Description,
			},
			wantFields: []string{"fullName"},
		},
		{
			name: "full name too long",
			input: entity.ClientInput{
				FullName:    strings.Repeat("x", 51),
				Email:       valid.Email,
				Description: valid.Description,
			},
			wantFields: []string{"fullName"},
		},
		{
			name: "full name at limits",
			input: entity.ClientInput{
				FullName:    strings.Repeat("x", 50),
				Email:       valid.Email,
				Description: valid.Description,
			},
		},
		{
			name: "email empty",
			input: entity.ClientInput{
				FullName:    valid.FullName,
				Description: valid.Description,
			},
			wantFields: []string{"email"},
		},
		{
			name: "description empty",
			input: entity.ClientInput{
				FullName: valid.FullName,
				Email:    valid.Email,
			},
			wantFields: []string{"description"},
		},
		{
			name:       "everything empty",
			input:      entity.ClientInput{},
			wantFields: []string{"fullName", "email", "description"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := service.ValidateClientInput(tt.input)

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, entity.ErrValidation)

			for _, field := range tt.wantFields {
				require.Contains(t, err.Error(), field)
			}
		})
	}
}

func TestValidateRequestInput(t *testing.T) {
	t.Parallel()

	err := service.ValidateRequestInput(entity.RequestInput{
		FullName: "John Doe",
		Title:    "help",
		Status:   entity.RequestStatusDone,
	})
	require.NoError(t, err)

	err = service.ValidateRequestInput(entity.RequestInput{
		Status: entity.RequestStatus("7"),
	})
	require.ErrorIs(t, err, entity.ErrValidation)
	require.Contains(t, err.Error(), "fullName")
	require.Contains(t, err.Error(), "title")
	require.Contains(t, err.Error(), "status")
}
