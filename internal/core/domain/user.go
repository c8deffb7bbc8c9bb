package domain

import "errors"

// Role names held in the roles reference table. The table is static data:
// this service reads it but never writes it.
const (
	RoleAdmin      = "ADMIN"
	RoleTechnician = "TECNICO"
	RoleClient     = "CLIENTE"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("incorrect password")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserHasEquipment = errors.New("user has registered equipment")
var ErrForbidden = errors.New("forbidden")

// User models a row in the usuarios table. JSON field names preserve the
// wire contract consumed by the existing frontend.
type User struct {
	ID             int64  `json:"id_usuario"`
	FirstName      string `json:"nombre"`
	LastName       string `json:"apellido"`
	Email          string `json:"email"`
	PasswordHash   string `json:"-"`
	Phone          string `json:"telefono"`
	RoleID         int64  `json:"id_rol"`
	RoleName       string `json:"nombre_rol,omitempty"`
	CompanyTaxID   string `json:"rut_empresa,omitempty"`
	CompanyName    string `json:"nombre_empresa,omitempty"`
	CompanyAddress string `json:"direccion_empresa,omitempty"`
}

// Role is a row in the roles table.
type Role struct {
	ID   int64  `json:"id_rol"`
	Name string `json:"nombre_rol"`
}

// Identity is the authenticated caller for one request: the verified token's
// user id plus the role name freshly resolved from the roles table. It lives
// only for the duration of request handling.
type Identity struct {
	UserID  int64
	Role    string
	IsAdmin bool
}

// CanActFor reports whether the identity may operate on the given user's
// resources: admins always, everyone else only on their own.
func (i Identity) CanActFor(userID int64) bool {
	return i.IsAdmin || i.UserID == userID
}
