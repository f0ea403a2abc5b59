package oca

import "github.com/matzehuels/parceltrack/pkg/carriers"

type payload struct {
	NumeroEnvio     *carriers.LooseString            `json:"NumeroEnvio"`
	EstadoActual    *carriers.LooseString            `json:"EstadoActual"`
	FechaEstimada   *carriers.LooseString            `json:"FechaEstimada"`
	Servicio        *carriers.LooseString            `json:"Servicio"`
	CantidadPiezas  *carriers.LooseInt               `json:"CantidadPiezas"`
	Peso            *carriers.LooseString            `json:"Peso"`
	SucursalOrigen  *carriers.LooseString            `json:"SucursalOrigen"`
	SucursalDestino *carriers.LooseString            `json:"SucursalDestino"`
	Receptor        *carriers.LooseString            `json:"Receptor"`
	Historial       carriers.LooseList[historyEntry] `json:"Historial"`
}

type historyEntry struct {
	Fecha    *carriers.LooseString `json:"Fecha"` // dd-mm-yyyy hh:mm
	Estado   *carriers.LooseString `json:"Estado"`
	Motivo   *carriers.LooseString `json:"Motivo"`
	Sucursal *carriers.LooseString `json:"Sucursal"`
}
