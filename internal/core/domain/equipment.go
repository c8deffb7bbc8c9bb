package domain

import "errors"

// EquipmentStatus is the validation state of a registered equipment.
type EquipmentStatus string

const (
	StatusPending   EquipmentStatus = "pendiente"
	StatusValidated EquipmentStatus = "validado"
	StatusRejected  EquipmentStatus = "rechazado"
)

var ErrEquipmentNotFound = errors.New("equipment not found")
var ErrInvalidStatus = errors.New("invalid status")

// IsValid reports whether s is one of the fixed status values.
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusValidated, StatusRejected:
		return true
	}
	return false
}

// Equipment models a row in the equipos table.
type Equipment struct {
	ID              int64           `json:"id_equipo"`
	Name            string          `json:"nombre_equipo"`
	Description     string          `json:"descripcion"`
	Status          EquipmentStatus `json:"estado_equipo"`
	OwnerID         int64           `json:"id_cliente"`
	SerialNumber    string          `json:"numero_serie"`
	Location        string          `json:"ubicacion"`
	ManufactureYear *int            `json:"anio_fabricacion,omitempty"`

	// Owner columns joined in on admin listings only.
	OwnerFirstName string `json:"nombre_cliente,omitempty"`
	OwnerLastName  string `json:"apellido_cliente,omitempty"`
	OwnerEmail     string `json:"email_cliente,omitempty"`
}
