package constants

const (
	ROLE_ADMIN   = "admin"
	ROLE_CASHIER = "cashier"
)

const (
	MISSING_LOGIN_INPUT  = "Email and password are required"
	INVALID_CREDENTIALS  = "Invalid email or password"
	INVALID_SESSION      = "Invalid session"
	ERROR_INTERNAL_ERROR = "Internal server error"

	EMPTY_CART           = "Cart is empty"
	ORDER_CREATE_FAILED  = "Failed to create order"
	ORDER_NOT_FOUND      = "Order not found"
	INVALID_ORDER_STATUS = "Invalid order status"
	INVALID_TRANSITION   = "Order status transition not allowed"

	PRODUCT_NOT_FOUND        = "Product not found"
	CATEGORY_NOT_FOUND       = "Category not found"
	PARTNER_NOT_FOUND        = "Partner not found"
	DATA_INPUT_IS_NOT_NUMBER = "Input must be a number"
)

// Setting keys stored per outlet.
const (
	SETTING_STORE_NAME    = "store_name"
	SETTING_STORE_ADDRESS = "store_address"
	SETTING_STORE_PHONE   = "store_phone"
	SETTING_TAX_RATE      = "tax_rate"
	SETTING_RECEIPT_PAPER = "receipt_paper"
)

// DefaultOutletID covers the single-location flows; the schema is ready for
// more outlets but every form falls back to this one.
const DefaultOutletID uint = 1
