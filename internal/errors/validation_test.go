package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/sawakaze/skillsheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("output_dir", "is required")
	ve.AddFieldError("store", "is invalid")
	ve.AddFieldErrorf("workers", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "output_dir: is required")
	s.Assert().Contains(ve.Error(), "store: is invalid")
	s.Assert().Contains(ve.Error(), "workers: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("data_dir", "is required").
		Fieldf("workers", "must be between %d and %d", 1, 64).
		RequiredField("output_dir").
		InvalidField("store", "not a known backend")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMinLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMinLength("prefix", "ab", 3, vb)
	errors.ValidateMinLength("hero_id", "validhero", 3, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["prefix"][0], "must be at least 3 characters")
	s.Assert().NotContains(validationErrors, "hero_id")
}

func (s *ValidationTestSuite) TestValidateMaxLength() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", "this is a very long report file name", 20, vb)
	errors.ValidateMaxLength("code", "ABC", 5, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["name"][0], "must be no more than 20 characters")
	s.Assert().NotContains(validationErrors, "code")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("workers", 100, 1, 64, vb)
	errors.ValidateRange("max_level", 8, 1, 99, vb)
	errors.ValidateRange("chunk_rows", 0, 1, 10000, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["workers"][0], "must be between 1 and 64")
	s.Assert().Contains(validationErrors["chunk_rows"][0], "must be between 1 and 10000")
	s.Assert().NotContains(validationErrors, "max_level")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowedStores := []string{"file", "redis"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("store", "postgres", allowedStores, vb)
	errors.ValidateEnum("fallback_store", "file", allowedStores, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["store"][0], "must be one of: file, redis")
	s.Assert().NotContains(validationErrors, "fallback_store")
}

func (s *ValidationTestSuite) TestComplexValidation() {
	// Simulate validating a render run configuration
	type RenderInput struct {
		OutputDir string
		Store     string
		Workers   int
		Limits    map[string]int
	}

	input := RenderInput{
		OutputDir: "",
		Store:     "postgres",
		Workers:   100,
		Limits: map[string]int{
			"chunk_rows": 600,
			"max_extras": 2,
		},
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("output_dir", input.OutputDir, vb)

	allowedStores := []string{"file", "redis"}
	errors.ValidateEnum("store", input.Store, allowedStores, vb)

	errors.ValidateRange("workers", input.Workers, 1, 64, vb)

	for limit, value := range input.Limits {
		errors.ValidateRange(limit, value, 1, 10000, vb)
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "output_dir")
	s.Assert().Contains(validationErrors, "store")
	s.Assert().Contains(validationErrors, "workers")
	s.Assert().NotContains(validationErrors, "chunk_rows")
}
