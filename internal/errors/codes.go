package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL.
// The frontend maps these codes to localized messages.

const (
	// ==================== Authentication (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	AuthTokenExpired       = "AUTH_TOKEN_EXPIRED"
	AuthTokenInvalid       = "AUTH_TOKEN_INVALID"
	AuthTokenRevoked       = "AUTH_TOKEN_REVOKED"
	AuthEmailAlreadyExists = "AUTH_EMAIL_EXISTS"
	AuthCPFAlreadyExists   = "AUTH_CPF_EXISTS"
	AuthWeakPassword       = "AUTH_WEAK_PASSWORD"
	AuthCodeInvalid        = "AUTH_CODE_INVALID"
	AuthAlreadyVerified    = "AUTH_ALREADY_VERIFIED"

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden    = "AUTHZ_FORBIDDEN"
	AuthzRoleNotFound = "AUTHZ_ROLE_NOT_FOUND"
	AuthzAdminOnly    = "AUTHZ_ADMIN_ONLY"

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationInvalidRange = "VALIDATION_INVALID_RANGE"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"
	ResourceConflict      = "RESOURCE_CONFLICT"

	// ==================== Catalog (CATALOG_) ====================
	CategoryNotFound   = "CATEGORY_NOT_FOUND"
	CategoryCycle      = "CATEGORY_CYCLE"
	CategoryInUse      = "CATEGORY_IN_USE"
	AttributeNotFound  = "ATTRIBUTE_NOT_FOUND"
	AttributeInUse     = "ATTRIBUTE_IN_USE"
	ProductNotFound    = "PRODUCT_NOT_FOUND"
	ProductSlugExists  = "PRODUCT_SLUG_EXISTS"
	ProductImageFailed = "PRODUCT_IMAGE_FAILED"

	// ==================== Orders (ORDER_) ====================
	OrderNotFound     = "ORDER_NOT_FOUND"
	OrderEmptyItems   = "ORDER_EMPTY_ITEMS"
	OrderInvalidState = "ORDER_INVALID_STATE"

	// ==================== Settings (SETTINGS_) ====================
	SettingsSingleton = "SETTINGS_SINGLETON"

	// ==================== Uploads (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE"
	UploadFailed          = "UPLOAD_FAILED"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
	InternalExternalAPI   = "INTERNAL_EXTERNAL_API"
)
