package intake

// Conversation texts. The bot speaks Spanish; hosts deliver these verbatim.
const (
	PromptWelcome = "¡Hola! Soy tu asistente de PQR.\nEscribe P, Q, R o S para empezar."
	PromptType    = "Indica el tipo: P, Q, R o S."

	PromptDocumento    = "Número de documento?"
	PromptEmail        = "Correo electrónico?"
	PromptTelefono     = "Teléfono de contacto?"
	PromptDepartamento = "Departamento?"
	PromptMunicipio    = "Municipio?"
	PromptCanal        = "¿Prefieres respuesta por correo o teléfono?"
	PromptDescripcion  = "Describe tu caso brevemente."
	PromptAutorizo     = "¿Autorizas uso de datos (sí/no)?"

	ReplyInvalidDocumento = "Documento no válido. Ingresa de nuevo:"
	ReplyInvalidEmail     = "Email inválido. Intenta otra vez:"
	ReplyInvalidTelefono  = "Teléfono inválido. Intenta de nuevo:"

	ReplyConfirmHint  = "Debes escribir 'confirmar' para finalizar o 'reiniciar'."
	ReplySubmitFailed = "No pudimos generar tu radicado en este momento. " +
		"Escribe 'confirmar' para intentarlo de nuevo o 'reiniciar' para empezar otra vez."

	ReplyRestart = "Reiniciado. " + PromptWelcome
	ReplyUnknown = "No entendí."
)

// typeLabels maps the accepted type selectors (lowercased, trimmed) to the
// canonical category label stored in the form.
var typeLabels = map[string]string{
	"p":          "Petición",
	"peticion":   "Petición",
	"petición":   "Petición",
	"petition":   "Petición",
	"q":          "Queja",
	"queja":      "Queja",
	"complaint":  "Queja",
	"r":          "Reclamo",
	"reclamo":    "Reclamo",
	"claim":      "Reclamo",
	"s":          "Sugerencia",
	"sugerencia": "Sugerencia",
	"suggestion": "Sugerencia",
}

// resetCommands trigger the global reset transition from any step.
var resetCommands = map[string]bool{
	"reiniciar": true,
	"reset":     true,
	"/reset":    true,
}
