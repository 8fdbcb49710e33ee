// Package promo contains the pure promotional helpers: the welcome coupon code
// generator and the static milestone template table.
package promo

import "strings"

// DescuentoBienvenida es el porcentaje del cupón de bienvenida.
const DescuentoBienvenida = 15

// GenerarCodigoCupon deriva el código promocional a partir del nombre del
// cerdito: "BIENVENIDO" + primer token del nombre en mayúsculas + "15".
// Determinístico y sin efectos: "Luna Bella" → "BIENVENIDOLUNA15".
func GenerarCodigoCupon(nombreCerdito string) string {
	primera := ""
	if campos := strings.Fields(nombreCerdito); len(campos) > 0 {
		primera = strings.ToUpper(campos[0])
	}
	return "BIENVENIDO" + primera + "15"
}
