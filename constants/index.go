package constants

// User roles
const (
	ROLE_ADMIN    = "admin"
	ROLE_CUSTOMER = "customer"
)

// Event statuses
const (
	STATUS_EVENT_PENDING   = "pending"
	STATUS_EVENT_DENIED    = "denied"
	STATUS_EVENT_ACCEPTED  = "accepted"
	STATUS_EVENT_CANCELLED = "cancelled"
)

// Ticket types
const (
	TICKET_TYPE_REGULAR = "regular"
	TICKET_TYPE_VIP     = "vip"
)

var UserRoles = []string{ROLE_ADMIN, ROLE_CUSTOMER}

var EventStatuses = []string{
	STATUS_EVENT_PENDING,
	STATUS_EVENT_DENIED,
	STATUS_EVENT_ACCEPTED,
	STATUS_EVENT_CANCELLED,
}

var TicketTypes = []string{TICKET_TYPE_REGULAR, TICKET_TYPE_VIP}

var PaymentMethods = []string{"ABA Pay", "Credit Card", "Pi Pay", "Alipay"}

var EventTypeNames = []string{"Conference", "Workshop", "Seminar", "Concert", "Festival"}

var DeptNames = []string{"Event management", "Event operation", "Marketing", "IT", "Finance"}

var Genders = []string{"male", "female", "other"}

// EventStatusTransitions is consulted only when EVENT_STATUS_STRICT=true.
// The default policy mirrors the admin-override behaviour: any status may be
// set from any other.
var EventStatusTransitions = map[string][]string{
	STATUS_EVENT_PENDING:   {STATUS_EVENT_ACCEPTED, STATUS_EVENT_DENIED, STATUS_EVENT_CANCELLED},
	STATUS_EVENT_ACCEPTED:  {STATUS_EVENT_CANCELLED},
	STATUS_EVENT_DENIED:    {},
	STATUS_EVENT_CANCELLED: {},
}

// Error messages
const (
	ERROR_INPUT                = "Invalid input"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	ERROR_CREATE               = "Create failed"
	ERROR_EDIT                 = "Update failed"
	ERROR_DELETE               = "Delete failed"
	DATA_INPUT_IS_NOT_NUMBER   = "Id param must be a number"

	MISSING_REGISTER_INPUT = "Username, email and password are required"
	MISSING_LOGIN_INPUT    = "Email and password are required"
	DUPLICATE_EMAIL        = "Email already in use"
	USER_NOT_FOUND         = "User not found"
	INVALID_CREDENTIALS    = "Invalid credentials"
	MISSING_TOKEN          = "Authorization header missing"
	INVALID_TOKEN          = "Invalid or expired token"

	MISSING_REQUIRED_FIELDS = "Required fields are missing"
	DUPLICATE_KEY           = "Unique field already in use"
	RECORD_NOT_FOUND        = "Record not found"
	DELETE_CONFLICT         = "Cannot delete: record is referenced by existing events"

	INVALID_STATUS          = "Invalid status value"
	INVALID_EVENT_TYPE      = "Invalid event type value"
	INVALID_SORT_ORDER      = "Invalid sort order, expected ASC or DESC"
	INVALID_DATE_RANGE      = "End date must be after start date"
	INVALID_EMAIL_FORMAT    = "Invalid email format"
	INVALID_PHONE_FORMAT    = "Invalid phone format"
	INVALID_STATUS_CHANGE   = "Status transition not allowed"
	TICKET_SOLD_OUT         = "No tickets left for this type"
	NEGATIVE_NUMER_REJECTED = "Value must be non-negative"
)
