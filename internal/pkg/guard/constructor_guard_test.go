package guard_test

import (
	"errors"
	"testing"

	"rental/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		assert.NotNil(t, guard)

		// Test with custom error
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))

		// Test with nil error (should use default)
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	// Define a sample domain object that uses ConstructorGuard
	type Charge struct {
		amount  int
		payWith string
		guard   guard.ConstructorGuard
	}

	var errChargeNotConstructed = errors.New("Charge must be created via NewCharge")

	newCharge := func(amount int, payWith string) (Charge, error) {
		if amount < 0 {
			return Charge{}, errors.New("amount cannot be negative")
		}
		if payWith == "" {
			return Charge{}, errors.New("pay method is required")
		}
		return Charge{
			amount:  amount,
			payWith: payWith,
			guard:   guard.NewConstructorGuard(),
		}, nil
	}

	validateCharge := func(c Charge) error {
		return c.guard.Validate(errChargeNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		charge, err := newCharge(20000, "카드")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateCharge(charge))
		assert.Equal(t, 20000, charge.amount)
		assert.Equal(t, "카드", charge.payWith)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var charge Charge // zero value

		// When
		err := validateCharge(charge)

		// Then
		// Zero value Charge has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errChargeNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		// Test negative amount
		_, err := newCharge(-20000, "카드")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount cannot be negative")

		// Test empty pay method
		_, err = newCharge(20000, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pay method is required")
	})
}

// TestConstructorGuardRealWorldExample shows a better pattern using embedded types.
func TestConstructorGuardRealWorldExample(t *testing.T) {
	// Define error once
	var errGarmentNotConstructed = errors.New("Garment must be created via NewGarment")

	// Define a guard-aware base type
	type guardedGarment struct {
		guard guard.ConstructorGuard
	}

	newGuardedGarment := func() guardedGarment {
		return guardedGarment{
			guard: guard.NewConstructorGuard(),
		}
	}

	validateGuardedGarment := func(g guardedGarment) error {
		return g.guard.Validate(errGarmentNotConstructed)
	}

	// Define the actual domain object
	type Garment struct {
		guardedGarment
		code  string
		name  string
		price int
	}

	newGarment := func(code, name string, price int) (Garment, error) {
		if code == "" {
			return Garment{}, errors.New("garment code is required")
		}
		if name == "" {
			return Garment{}, errors.New("garment name is required")
		}
		if price < 0 {
			return Garment{}, errors.New("garment price cannot be negative")
		}
		return Garment{
			guardedGarment: newGuardedGarment(),
			code:           code,
			name:           name,
			price:          price,
		}, nil
	}

	t.Run("valid_garment_construction", func(t *testing.T) {
		// When
		garment, err := newGarment("JK001", "자켓", 20000)

		// Then
		require.NoError(t, err)
		require.NoError(t, validateGuardedGarment(garment.guardedGarment))
		assert.Equal(t, "JK001", garment.code)
		assert.Equal(t, "자켓", garment.name)
		assert.Equal(t, 20000, garment.price)
	})

	t.Run("zero_value_garment_fails_validation", func(t *testing.T) {
		// Given
		var garment Garment // zero value

		// When
		err := validateGuardedGarment(garment.guardedGarment)

		// Then
		// Zero value has zero value guard which returns the error we pass
		require.Error(t, err)
		assert.Equal(t, errGarmentNotConstructed, err)
	})
}

// TestConstructorGuardWithMultipleErrors demonstrates using ConstructorGuard
// with different error types and messages.
func TestConstructorGuardWithMultipleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		expectedError error
	}{
		{
			name:          "order_not_constructed_error",
			expectedError: errors.New("Order must be created via NewOrder"),
		},
		{
			name:          "coupon_not_constructed_error",
			expectedError: errors.New("Coupon must be created via NewCoupon factory method"),
		},
		{
			name:          "user_info_not_constructed_error",
			expectedError: errors.New("UserInfo requires proper initialization through constructor"),
		},
		{
			name:          "nil_error_uses_default",
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			guard := guard.NewConstructorGuard()

			// When
			err := guard.Validate(tc.expectedError)

			// Then
			require.NoError(t, err, "Properly constructed guard should not return error")
		})
	}
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("nil_error_uses_default_for_zero_value", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		// Then
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Contains(t, guard.ErrDefaultConstructorGuard.Error(), "constructor")
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// BenchmarkConstructorGuard measures the performance overhead of using ConstructorGuard.
func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("NewConstructorGuard", func(b *testing.B) {
		b.ResetTimer()
		for range b.N {
			_ = guard.NewConstructorGuard()
		}
	})

	b.Run("Validate_Success", func(b *testing.B) {
		guard := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})

	b.Run("Validate_ZeroValue", func(b *testing.B) {
		var guard guard.ConstructorGuard
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = guard.Validate(err)
		}
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	guard := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	// Run multiple goroutines that validate the guard concurrently
	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := guard.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	// Wait for all goroutines to complete
	for range 100 {
		<-done
	}
}

// TestConstructorGuardImmutability verifies that ConstructorGuard is immutable.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_fields_are_not_modifiable", func(t *testing.T) {
		// Given
		originalError := errors.New("original error")
		g := guard.NewConstructorGuard()

		// When
		// Try to create another guard
		anotherError := errors.New("another error")
		_ = guard.NewConstructorGuard()

		// Then
		// Original guard should still validate successfully
		require.NoError(t, g.Validate(originalError))
		require.NoError(t, g.Validate(anotherError))
	})

	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard // Pass by value

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
