package handler

type createEquipmentRequest struct {
	Name            string `json:"nombre_equipo" validate:"required"`
	Description     string `json:"descripcion"`
	SerialNumber    string `json:"numero_serie"  validate:"required"`
	Location        string `json:"ubicacion"     validate:"required"`
	ManufactureYear *int   `json:"anio_fabricacion"`
}

type createEquipmentResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"mensaje"`
}

type updateDescriptionRequest struct {
	Description string `json:"descripcion" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"estado_equipo" validate:"required"`
}
