package middleware

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/household-platform/household-service/internal/domain"
	"github.com/household-platform/household-service/internal/platform/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var customValidators = map[string]validator.Func{
	"mealtype":    validateMealType,
	"isodate":     validateISODate,
	"measureunit": validateMeasureUnit,
	"userrole":    validateUserRole,
	"txntype":     validateTransactionType,
	"billperiod":  validateBillPeriod,
}

// InitValidator initializes the validator with household-specific validators
func InitValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		registerAll(validate)

		// Gin binds with its own validator instance
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerAll(v)
		}
	})

	return validate
}

func registerAll(v *validator.Validate) {
	for tag, fn := range customValidators {
		_ = v.RegisterValidation(tag, fn)
	}

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
}

// GetValidator returns the singleton validator instance
func GetValidator() *validator.Validate {
	if validate == nil {
		return InitValidator()
	}
	return validate
}

var (
	measureUnitRegex = regexp.MustCompile(`^[a-zA-Z]{1,16}$`)
	billPeriodRegex  = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
)

func validateMealType(fl validator.FieldLevel) bool {
	return domain.MealType(fl.Field().String()).IsValid()
}

func validateISODate(fl validator.FieldLevel) bool {
	return domain.ValidISODate(fl.Field().String())
}

func validateMeasureUnit(fl validator.FieldLevel) bool {
	return measureUnitRegex.MatchString(fl.Field().String())
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch domain.Role(fl.Field().String()) {
	case domain.RoleAdmin, domain.RoleEditor, domain.RoleViewer:
		return true
	}
	return false
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch domain.TransactionType(fl.Field().String()) {
	case domain.TransactionIncome, domain.TransactionExpense:
		return true
	}
	return false
}

func validateBillPeriod(fl validator.FieldLevel) bool {
	return billPeriodRegex.MatchString(fl.Field().String())
}

// ValidationErrorFormatter formats validation errors into a field map
func ValidationErrorFormatter(err error) map[string]string {
	fields := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			fields[e.Field()] = formatValidationError(e)
		}
	}

	return fields
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "mealtype":
		return "must be one of: breakfast, lunch, dinner, snack"
	case "isodate":
		return "must be a valid date (format: YYYY-MM-DD)"
	case "measureunit":
		return "must be a valid measurement unit"
	case "userrole":
		return "must be one of: admin, editor, viewer"
	case "txntype":
		return "must be one of: income, expense"
	case "billperiod":
		return "must be a valid billing period (format: YYYY-MM)"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

// BindAndValidate binds the request body and validates it
func BindAndValidate(c *gin.Context, obj interface{}) *errors.AppError {
	if err := c.ShouldBindJSON(obj); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			fields := ValidationErrorFormatter(validationErrors)
			return errors.ErrValidationWithFields("validation failed", fields)
		}
		return errors.ErrBadRequest("invalid request body: " + err.Error())
	}
	return nil
}

// ValidateStruct validates a struct using the shared validator
func ValidateStruct(obj interface{}) *errors.AppError {
	v := GetValidator()
	if err := v.Struct(obj); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			fields := ValidationErrorFormatter(validationErrors)
			return errors.ErrValidationWithFields("validation failed", fields)
		}
		return errors.ErrBadRequest("validation failed: " + err.Error())
	}
	return nil
}
