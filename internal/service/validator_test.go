package service

import (
	"strings"
	"testing"

	storeerrors "github.com/abgdnv/storehub/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeFields struct {
	name, address, city, country, postalCode, phone, email string
}

func validFields() storeFields {
	return storeFields{
		name:       "Tech Store",
		address:    "Main St 1",
		city:       "Berlin",
		country:    "Germany",
		postalCode: "10719",
		phone:      "+493012345678",
		email:      "berlin@techstore.com",
	}
}

func Test_StoreValidator_ValidateStore(t *testing.T) {
	testCases := []struct {
		name            string
		mutate          func(f *storeFields)
		expectedMessage string
	}{
		{
			name:   "valid payload passes",
			mutate: func(f *storeFields) {},
		},
		{
			name:            "empty name",
			mutate:          func(f *storeFields) { f.name = "" },
			expectedMessage: "Store name is required",
		},
		{
			name:            "name too long",
			mutate:          func(f *storeFields) { f.name = strings.Repeat("a", 101) },
			expectedMessage: "Store name must not exceed 100 characters",
		},
		{
			name:            "empty address",
			mutate:          func(f *storeFields) { f.address = "" },
			expectedMessage: "Store address is required",
		},
		{
			name:            "address too long",
			mutate:          func(f *storeFields) { f.address = strings.Repeat("a", 201) },
			expectedMessage: "Store address must not exceed 200 characters",
		},
		{
			name:            "empty city",
			mutate:          func(f *storeFields) { f.city = "" },
			expectedMessage: "Store city is required",
		},
		{
			name:            "empty country",
			mutate:          func(f *storeFields) { f.country = "" },
			expectedMessage: "Store country is required",
		},
		{
			name:            "postal code too long",
			mutate:          func(f *storeFields) { f.postalCode = strings.Repeat("1", 21) },
			expectedMessage: "Store postal code must not exceed 20 characters",
		},
		{
			name:            "empty phone",
			mutate:          func(f *storeFields) { f.phone = "" },
			expectedMessage: "Store phone is required",
		},
		{
			name:            "phone fails international pattern",
			mutate:          func(f *storeFields) { f.phone = "0123-456" },
			expectedMessage: "Invalid phone format",
		},
		{
			name:            "empty email",
			mutate:          func(f *storeFields) { f.email = "" },
			expectedMessage: "Store email is required",
		},
		{
			name:            "invalid email",
			mutate:          func(f *storeFields) { f.email = "not-an-email" },
			expectedMessage: "Invalid email format",
		},
		{
			name: "first failing field wins",
			mutate: func(f *storeFields) {
				f.name = ""
				f.email = "not-an-email"
			},
			expectedMessage: "Store name is required",
		},
	}

	v := NewStoreValidator()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFields()
			tc.mutate(&f)

			err := v.ValidateStore(f.name, f.address, f.city, f.country, f.postalCode, f.phone, f.email)

			if tc.expectedMessage == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *storeerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.expectedMessage, validationErr.Message)
		})
	}
}

func Test_StoreValidator_ValidatePartial(t *testing.T) {
	v := NewStoreValidator()
	strPtr := func(s string) *string { return &s }

	t.Run("absent fields are never checked", func(t *testing.T) {
		assert.NoError(t, v.ValidatePartial(StorePatchDto{}))
	})

	t.Run("supplied invalid email fails", func(t *testing.T) {
		err := v.ValidatePartial(StorePatchDto{Email: strPtr("not-an-email")})
		var validationErr *storeerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Invalid email format", validationErr.Message)
	})

	t.Run("supplied empty name fails", func(t *testing.T) {
		err := v.ValidatePartial(StorePatchDto{Name: strPtr("")})
		var validationErr *storeerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Store name is required", validationErr.Message)
	})

	// Partial validation only checks phone for non-emptiness; the
	// international pattern applies to full validation only.
	t.Run("phone pattern is not enforced on partial payloads", func(t *testing.T) {
		assert.NoError(t, v.ValidatePartial(StorePatchDto{Phone: strPtr("0123-456")}))
	})

	t.Run("empty phone still fails", func(t *testing.T) {
		err := v.ValidatePartial(StorePatchDto{Phone: strPtr("")})
		var validationErr *storeerrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Store phone is required", validationErr.Message)
	})
}
