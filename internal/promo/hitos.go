package promo

import (
	"fmt"
	"time"

	"minipigs/internal/model"

	"github.com/google/uuid"
)

// PlantillaHito es el triple título/descripción/icono de un hito estándar.
// La descripción puede llevar un %s que se interpola con el nombre relevante.
type PlantillaHito struct {
	Titulo      string
	Descripcion string
	Icono       string
}

// Tabla estática de hitos estándar del diario de vida.
var plantillasHito = map[string]PlantillaHito{
	"adopcion": {
		Titulo:      "¡Llegó a su nuevo hogar!",
		Descripcion: "Adoptado con mucho amor por %s",
		Icono:       "home",
	},
	"nacimiento": {
		Titulo:      "Nació en la granja",
		Descripcion: "Primer día de vida de %s",
		Icono:       "sparkles",
	},
	"control_veterinario": {
		Titulo:      "Control veterinario",
		Descripcion: "Chequeo de salud de %s: todo en orden",
		Icono:       "stethoscope",
	},
}

// Plantilla returns the template for a semantic key; ok=false for unknown keys.
func Plantilla(clave string) (PlantillaHito, bool) {
	p, ok := plantillasHito[clave]
	return p, ok
}

// HitoAdopcion sintetiza el hito de adopción que el sincronizador de ventas
// escribe en el diario del cerdito. El ID "sale-<ventaID>" lo hace upsertable:
// re-guardar la misma venta entregada no duplica la entrada.
func HitoAdopcion(ventaID uuid.UUID, cerditoID uuid.UUID, fecha time.Time, clienteNombre string) model.Hito {
	p := plantillasHito["adopcion"]
	return model.Hito{
		ID:          "sale-" + ventaID.String(),
		CerditoID:   cerditoID,
		Fecha:       fecha,
		Titulo:      p.Titulo,
		Descripcion: fmt.Sprintf(p.Descripcion, clienteNombre),
		Icono:       p.Icono,
	}
}
