package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order representa la cabecera de una orden. Se crea exactamente una vez al
// confirmar el carrito y nunca se modifica ni elimina.
type Order struct {
	ID           string
	DealerID     string
	UserID       *string // nil para checkout de invitado
	CustomerName string
	Total        decimal.Decimal // derivado: suma de precio×cantidad de las líneas
	OrderDate    time.Time
}
