package intake

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pqrchat/backend/internal/faq"
	"pqrchat/backend/internal/validate"
)

// Sink is the append-only record store the engine writes to. Interactions are
// logged on every turn; submissions only when a confirmation commits.
// AppendSubmission returns the generated radicado identifier on success.
type Sink interface {
	AppendInteraction(ctx context.Context, sessionID, userText, botText string) error
	AppendSubmission(ctx context.Context, form Form) (string, error)
}

// Engine drives the intake conversation. It holds no per-conversation state:
// callers own their Session values and thread them through Handle.
type Engine struct {
	Retriever *faq.Retriever
	Sink      Sink
}

// NewEngine creates the intake engine.
func NewEngine(retriever *faq.Retriever, sink Sink) *Engine {
	return &Engine{Retriever: retriever, Sink: sink}
}

// Handle processes one inbound message against the given session and returns
// the reply. Exactly one interaction record is appended per call; a failed
// append is logged but never fails the reply. A committed confirmation
// additionally appends one submission record.
func (e *Engine) Handle(ctx context.Context, sessionID, text string, st *Session) string {
	reply := e.advance(ctx, text, st)

	if err := e.Sink.AppendInteraction(ctx, sessionID, text, reply); err != nil {
		log.Printf("ERROR: Failed to log interaction for session %s: %v", sessionID, err)
	}
	return reply
}

// advance applies the reset transition and the current step's logic, mutating
// the session in place.
func (e *Engine) advance(ctx context.Context, text string, st *Session) string {
	low := strings.ToLower(strings.TrimSpace(text))

	// Global transition, reachable from every step including confirmar.
	if resetCommands[low] {
		st.Reset()
		return ReplyRestart
	}

	switch st.Step {
	case StepWelcome:
		label, ok := typeLabels[low]
		if !ok {
			if answer, found := e.Retriever.Retrieve(text); found {
				return answer + "\n\n" + PromptType
			}
			return PromptType
		}
		st.Form.Tipo = &label
		st.Step = StepNombre
		return fmt.Sprintf("Tipo %s. Tu nombre completo?", label)

	case StepNombre:
		st.Form.Nombre = &text
		st.Step = StepDocumento
		return PromptDocumento

	case StepDocumento:
		if !validate.Document(text) {
			return ReplyInvalidDocumento
		}
		st.Form.Documento = &text
		st.Step = StepEmail
		return PromptEmail

	case StepEmail:
		if !validate.Email(text) {
			return ReplyInvalidEmail
		}
		st.Form.Email = &text
		st.Step = StepTelefono
		return PromptTelefono

	case StepTelefono:
		if !validate.Phone(text) {
			return ReplyInvalidTelefono
		}
		st.Form.Telefono = &text
		st.Step = StepDepartamento
		return PromptDepartamento

	case StepDepartamento:
		st.Form.Departamento = &text
		st.Step = StepMunicipio
		return PromptMunicipio

	case StepMunicipio:
		st.Form.Municipio = &text
		st.Step = StepCanal
		return PromptCanal

	case StepCanal:
		st.Form.Canal = &text
		st.Step = StepDescripcion
		return PromptDescripcion

	case StepDescripcion:
		st.Form.Descripcion = &text
		st.Step = StepAutorizo
		return PromptAutorizo

	case StepAutorizo:
		st.Form.Autorizo = &text
		st.Step = StepConfirmar
		return "Gracias. Confirma para radicar:\n" + st.Form.Summary() +
			"\nEscribe 'confirmar' o 'reiniciar'."

	case StepConfirmar:
		if !strings.HasPrefix(low, "confirmar") {
			return ReplyConfirmHint
		}
		rid, err := e.Sink.AppendSubmission(ctx, st.Form)
		if err != nil {
			// A failed append must never be reported as a confirmed
			// submission; the session stays at confirmar so the user
			// can retry or reset.
			log.Printf("ERROR: Failed to append submission: %v", err)
			return ReplySubmitFailed
		}
		st.Reset()
		return "✅ Radicado generado: " + rid

	default:
		// Tampered or corrupted session state. Reply generically but do
		// not auto-reset, so collected data survives until the user
		// resets explicitly.
		return ReplyUnknown
	}
}
