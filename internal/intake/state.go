// Package intake implements the conversational state machine that collects a
// PQR (Petición, Queja, Reclamo o Sugerencia) submission field by field. The
// engine is presentation-agnostic: every host front end calls Handle with the
// raw user text and the session it owns, and renders the returned reply.
package intake

import "strings"

// Step identifies the data-collection step a session is in. Steps advance in
// the fixed order below; the only backward transition is the global reset.
type Step string

const (
	StepWelcome      Step = "welcome"
	StepNombre       Step = "nombre"
	StepDocumento    Step = "documento"
	StepEmail        Step = "email"
	StepTelefono     Step = "telefono"
	StepDepartamento Step = "departamento"
	StepMunicipio    Step = "municipio"
	StepCanal        Step = "canal"
	StepDescripcion  Step = "descripcion"
	StepAutorizo     Step = "autorizo"
	StepConfirmar    Step = "confirmar"
)

// Form holds the collected field values. A nil field means its collection
// step has not passed yet; an empty non-nil string is a legitimately
// collected empty answer at a free-text step.
type Form struct {
	Tipo         *string `json:"tipo,omitempty"`
	Nombre       *string `json:"nombre,omitempty"`
	Documento    *string `json:"documento,omitempty"`
	Email        *string `json:"email,omitempty"`
	Telefono     *string `json:"telefono,omitempty"`
	Departamento *string `json:"departamento,omitempty"`
	Municipio    *string `json:"municipio,omitempty"`
	Canal        *string `json:"canal,omitempty"`
	Descripcion  *string `json:"descripcion,omitempty"`
	Autorizo     *string `json:"autorizo,omitempty"`
}

// summaryField pairs a display label with the accessor for one form field,
// in collection order. The order is fixed so confirmation summaries are
// deterministic.
var summaryFields = []struct {
	Label string
	Get   func(f *Form) *string
}{
	{"Tipo", func(f *Form) *string { return f.Tipo }},
	{"Nombre", func(f *Form) *string { return f.Nombre }},
	{"Documento", func(f *Form) *string { return f.Documento }},
	{"Email", func(f *Form) *string { return f.Email }},
	{"Teléfono", func(f *Form) *string { return f.Telefono }},
	{"Departamento", func(f *Form) *string { return f.Departamento }},
	{"Municipio", func(f *Form) *string { return f.Municipio }},
	{"Canal", func(f *Form) *string { return f.Canal }},
	{"Descripción", func(f *Form) *string { return f.Descripcion }},
	{"Autorizo", func(f *Form) *string { return f.Autorizo }},
}

// summaryPlaceholder marks fields whose step has not been passed yet.
const summaryPlaceholder = "—"

// Summary renders a human-readable listing of every field in collection
// order, with a placeholder for missing values. It is display-only and never
// re-parsed.
func (f *Form) Summary() string {
	var b strings.Builder
	for i, field := range summaryFields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(field.Label)
		b.WriteString(": ")
		if v := field.Get(f); v != nil {
			b.WriteString(*v)
		} else {
			b.WriteString(summaryPlaceholder)
		}
	}
	return b.String()
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Values returns the form as label-free field values in collection order:
// tipo, nombre, documento, email, telefono, departamento, municipio, canal,
// descripcion, autorizo.
func (f *Form) Values() [10]string {
	return [10]string{
		value(f.Tipo), value(f.Nombre), value(f.Documento), value(f.Email),
		value(f.Telefono), value(f.Departamento), value(f.Municipio),
		value(f.Canal), value(f.Descripcion), value(f.Autorizo),
	}
}

// Session is the complete conversational state of one active conversation.
// It is owned by the calling host, mutated only by Engine.Handle, and never
// durably persisted: a new session always starts blank at the welcome step.
type Session struct {
	Step Step `json:"step"`
	Form Form `json:"form"`
}

// NewSession returns a blank session at the welcome step.
func NewSession() *Session {
	return &Session{Step: StepWelcome}
}

// Reset discards all collected data and returns the session to the welcome
// step.
func (s *Session) Reset() {
	s.Step = StepWelcome
	s.Form = Form{}
}
