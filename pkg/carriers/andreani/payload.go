package andreani

import "github.com/matzehuels/parceltrack/pkg/carriers"

// payload is the intercepted /api/vN/envios response. Every field is
// optional and may arrive with the wrong JSON type.
type payload struct {
	NumeroAndreani         *carriers.LooseString             `json:"numeroAndreani"`
	Estado                 *carriers.LooseString             `json:"estado"`
	FechaEstado            *carriers.LooseString             `json:"fechaEstado"`
	FechaEstimadaDeEntrega *carriers.LooseString             `json:"fechaEstimadaDeEntrega"`
	Servicio               *carriers.LooseString             `json:"servicio"`
	Bultos                 *carriers.LooseInt                `json:"bultos"`
	Peso                   *carriers.LooseString             `json:"peso"`
	SucursalOrigen         *carriers.LooseString             `json:"sucursalOrigen"`
	SucursalDestino        *carriers.LooseString             `json:"sucursalDestino"`
	Receptor               *carriers.LooseString             `json:"receptor"`
	Timeline               carriers.LooseList[timelineEvent] `json:"timeline"`

	Error   *carriers.LooseString `json:"error"`
	Mensaje *carriers.LooseString `json:"mensaje"`
}

type timelineEvent struct {
	Fecha       *carriers.LooseString `json:"fecha"`
	Estado      *carriers.LooseString `json:"estado"`
	Descripcion *carriers.LooseString `json:"descripcion"`
	Sucursal    *carriers.LooseString `json:"sucursal"`
}
