package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse acknowledges a mutation with no payload to return.
type messageResponse struct {
	Message string `json:"mensaje"`
}

type updateProfileRequest struct {
	FirstName      string `json:"nombre"    validate:"required"`
	LastName       string `json:"apellido"  validate:"required"`
	Phone          string `json:"telefono"  validate:"required,numeric,min=8,max=15"`
	CompanyTaxID   string `json:"rut_empresa"`
	CompanyName    string `json:"nombre_empresa"`
	CompanyAddress string `json:"direccion_empresa"`
}

type changeRoleRequest struct {
	RoleID int64 `json:"id_rol" validate:"required"`
}
