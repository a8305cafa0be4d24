package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a parsed storage/business error
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts an error into a user-facing code and message without
// leaking driver internals. context hints at the operation ("create product",
// "delete category", ...).
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "An internal error occurred",
		}
	}

	errStr := err.Error()
	errStrLower := strings.ToLower(errStr)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	// Unique constraint violation (postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// Foreign key constraint violation (postgres 23503)
	if strings.Contains(errStrLower, "foreign key constraint") {
		return parseForeignKeyError(errStrLower, context)
	}

	// Not-null constraint violation (postgres 23502)
	if strings.Contains(errStrLower, "null value") &&
		strings.Contains(errStrLower, "violates not-null constraint") {
		return parseNotNullError(errStrLower)
	}

	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "An external service is unavailable, please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "An internal error occurred, please try again later",
	}
}

func parseDuplicateKeyError(errLower string) ErrorInfo {
	if strings.Contains(errLower, "email") {
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "This email is already registered"}
	}
	if strings.Contains(errLower, "username") {
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "This email is already registered"}
	}
	if strings.Contains(errLower, "cpf") {
		return ErrorInfo{Code: AuthCPFAlreadyExists, Message: "This CPF is already registered"}
	}
	if strings.Contains(errLower, "products") && strings.Contains(errLower, "slug") {
		return ErrorInfo{Code: ProductSlugExists, Message: "A product with this slug already exists"}
	}
	if strings.Contains(errLower, "slug") {
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "This slug is already in use"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "This record already exists"}
}

func parseForeignKeyError(errLower, context string) ErrorInfo {
	// Delete blocked by protected references (RESTRICT semantics)
	if strings.Contains(errLower, "still referenced") ||
		strings.Contains(errLower, "is still referenced by") {
		if strings.Contains(context, "category") {
			return ErrorInfo{Code: CategoryInUse, Message: "Category has products and cannot be deleted"}
		}
		if strings.Contains(context, "attribute") {
			return ErrorInfo{Code: AttributeInUse, Message: "Attribute is in use and cannot be deleted"}
		}
		return ErrorInfo{Code: ResourceConflict, Message: "Record is referenced by other data and cannot be deleted"}
	}

	// Insert/update referencing a missing row
	if strings.Contains(errLower, "category_id") {
		return ErrorInfo{Code: CategoryNotFound, Message: "Category does not exist"}
	}
	if strings.Contains(errLower, "product_id") {
		return ErrorInfo{Code: ProductNotFound, Message: "Product does not exist"}
	}
	if strings.Contains(errLower, "user_id") || strings.Contains(errLower, "customer_id") {
		return ErrorInfo{Code: ResourceNotFound, Message: "User does not exist"}
	}
	return ErrorInfo{Code: ResourceNotFound, Message: "Referenced record does not exist"}
}

func parseNotNullError(errLower string) ErrorInfo {
	for _, field := range []string{"email", "password", "name", "slug", "description", "street", "city"} {
		if strings.Contains(errLower, field) {
			return ErrorInfo{Code: ValidationRequired, Message: "Field '" + field + "' is required"}
		}
	}
	return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)
	switch {
	case strings.Contains(contextLower, "category"):
		return "Category not found"
	case strings.Contains(contextLower, "product"):
		return "Product not found"
	case strings.Contains(contextLower, "order"):
		return "Order not found"
	case strings.Contains(contextLower, "address"):
		return "Address not found"
	case strings.Contains(contextLower, "user"):
		return "User not found"
	case strings.Contains(contextLower, "attribute"):
		return "Attribute not found"
	}
	return "Record not found"
}
