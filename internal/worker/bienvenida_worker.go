package worker

// bienvenida_worker.go
// Procesa los trabajos de QueueBienvenida: genera el certificado de adopción
// en PDF y envía al cliente el correo con su código de cupón y el certificado
// adjunto. El fallo de este camino nunca afecta la venta ya confirmada.

import (
	"context"
	"encoding/json"
	"fmt"

	"minipigs/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxIntentosBienvenida = 3

// BienvenidaJobPayload is the job envelope sent to QueueBienvenida.
type BienvenidaJobPayload struct {
	VentaID       string `json:"venta_id"`
	ToEmail       string `json:"to_email"`
	ClienteNombre string `json:"cliente_nombre"`
	NombreCerdito string `json:"nombre_cerdito"`
	CodigoCupon   string `json:"codigo_cupon"`
	Descuento     int    `json:"descuento"`
	Intentos      int    `json:"intentos"`
}

// BienvenidaWorker sends the welcome email with the adoption certificate.
type BienvenidaWorker struct {
	mailer      *infra.Mailer
	storagePath string
}

func NewBienvenidaWorker(mailer *infra.Mailer, storagePath string) *BienvenidaWorker {
	return &BienvenidaWorker{mailer: mailer, storagePath: storagePath}
}

// Process generates the certificate PDF and sends the welcome email.
// On failure the job is re-enqueued up to maxIntentosBienvenida, then moved
// to the DLQ for manual inspection.
func (w *BienvenidaWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload BienvenidaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("bienvenida_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Str("venta_id", payload.VentaID).Msg("bienvenida_worker: empty to_email — skipping")
		return
	}

	err := w.enviar(payload)
	if err == nil {
		log.Info().Str("to", payload.ToEmail).Str("venta_id", payload.VentaID).
			Msg("bienvenida_worker: correo de bienvenida enviado")
		return
	}

	payload.Intentos++
	log.Error().Err(err).Str("to", payload.ToEmail).Int("intentos", payload.Intentos).
		Msg("bienvenida_worker: fallo el envío")

	if payload.Intentos >= maxIntentosBienvenida {
		data, _ := json.Marshal(payload)
		SendToDLQ(ctx, rdb, QueueBienvenida, "bienvenida", data, err.Error(), payload.Intentos)
		return
	}

	// Re-enqueue for another attempt.
	data, _ := json.Marshal(payload)
	job, _ := json.Marshal(Job{Type: "bienvenida", Payload: data})
	if pushErr := rdb.LPush(ctx, QueueBienvenida, job).Err(); pushErr != nil {
		log.Error().Err(pushErr).Msg("bienvenida_worker: re-enqueue failed")
	}
}

func (w *BienvenidaWorker) enviar(payload BienvenidaJobPayload) error {
	pdfPath, err := infra.GenerarCertificadoAdopcion(
		payload.NombreCerdito, payload.ClienteNombre, w.storagePath)
	if err != nil {
		// El certificado es un adjunto deseable, no imprescindible: el cupón
		// viaja igual en el cuerpo del correo.
		log.Warn().Err(err).Str("venta_id", payload.VentaID).
			Msg("bienvenida_worker: no se pudo generar el certificado")
		pdfPath = ""
	}

	asunto := fmt.Sprintf("¡Bienvenido a casa, %s!", payload.NombreCerdito)
	cuerpo := fmt.Sprintf(
		"Hola %s:\n\n"+
			"¡%s ya es parte de tu familia! Como regalo de bienvenida te dejamos "+
			"un cupón de %d%% de descuento para tu próxima compra en la tienda:\n\n"+
			"    %s\n\n"+
			"Adjuntamos el certificado de adopción. ¡Gracias por adoptar!\n",
		payload.ClienteNombre, payload.NombreCerdito, payload.Descuento, payload.CodigoCupon)

	return w.mailer.Enviar(payload.ToEmail, asunto, cuerpo, pdfPath)
}
