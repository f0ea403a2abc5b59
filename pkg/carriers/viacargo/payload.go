package viacargo

import (
	"encoding/json"

	"github.com/matzehuels/parceltrack/pkg/carriers"
)

type payload struct {
	OK          *carriers.LooseBool          `json:"ok"`
	Mensaje     *carriers.LooseString        `json:"mensaje"`
	Envio       *shipment                    `json:"envio"`
	Movimientos carriers.LooseList[movement] `json:"movimientos"`
}

type shipment struct {
	Numero               *carriers.LooseString `json:"numero"`
	Estado               *carriers.LooseString `json:"estado"`
	FechaEntregaEstimada *carriers.LooseString `json:"fechaEntregaEstimada"`
	Servicio             *carriers.LooseString `json:"servicio"`
	Piezas               *carriers.LooseInt    `json:"piezas"`
	Peso                 *carriers.LooseString `json:"peso"`
	Origen               *carriers.LooseString `json:"origen"`
	Destino              *carriers.LooseString `json:"destino"`
	Firmante             *carriers.LooseString `json:"firmante"`
}

// UnmarshalJSON leaves s empty when envio is not an object.
func (s *shipment) UnmarshalJSON(data []byte) error {
	type plain shipment
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	*s = shipment(p)
	return nil
}

type movement struct {
	Fecha       *carriers.LooseString `json:"fecha"` // dd/mm/yyyy
	Hora        *carriers.LooseString `json:"hora"`  // hh:mm
	Descripcion *carriers.LooseString `json:"descripcion"`
	Sucursal    *carriers.LooseString `json:"sucursal"`
}
