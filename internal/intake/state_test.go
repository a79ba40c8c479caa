package intake_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pqrchat/backend/internal/intake"
)

func strptr(s string) *string { return &s }

func TestSummaryShowsPlaceholdersForMissingFields(t *testing.T) {
	form := intake.Form{
		Tipo:   strptr("Queja"),
		Nombre: strptr("Jane Doe"),
	}

	summary := form.Summary()

	assert.Contains(t, summary, "Tipo: Queja")
	assert.Contains(t, summary, "Nombre: Jane Doe")
	assert.Contains(t, summary, "Documento: —")
	assert.Contains(t, summary, "Autorizo: —")
}

func TestSummaryIsDeterministicAndOrdered(t *testing.T) {
	form := intake.Form{Tipo: strptr("Petición")}

	first := form.Summary()
	second := form.Summary()

	assert.Equal(t, first, second)
	lines := []string{
		"Tipo:", "Nombre:", "Documento:", "Email:", "Teléfono:",
		"Departamento:", "Municipio:", "Canal:", "Descripción:", "Autorizo:",
	}
	pos := -1
	for _, prefix := range lines {
		idx := strings.Index(first, prefix)
		require.GreaterOrEqual(t, idx, 0, "summary missing %q", prefix)
		assert.Greater(t, idx, pos, "%q out of order", prefix)
		pos = idx
	}
}

func TestResetClearsFormAndStep(t *testing.T) {
	st := &intake.Session{
		Step: intake.StepConfirmar,
		Form: intake.Form{Tipo: strptr("Reclamo"), Email: strptr("a@b.co")},
	}

	st.Reset()

	assert.Equal(t, intake.StepWelcome, st.Step)
	assert.Equal(t, intake.Form{}, st.Form)
}

// TestSessionJSONRoundTrip covers what the session stores rely on: a session
// marshals to JSON and back without losing the step or any collected field,
// including legitimately empty free-text answers.
func TestSessionJSONRoundTrip(t *testing.T) {
	st := &intake.Session{
		Step: intake.StepCanal,
		Form: intake.Form{
			Tipo:         strptr("Sugerencia"),
			Nombre:       strptr(""),
			Documento:    strptr("A1234"),
			Email:        strptr("jane@x.com"),
			Telefono:     strptr("+1 555-1234"),
			Departamento: strptr("DC"),
			Municipio:    strptr("Bogota"),
		},
	}

	data, err := json.Marshal(st)
	require.NoError(t, err)

	var decoded intake.Session
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, st.Step, decoded.Step)
	assert.Equal(t, st.Form, decoded.Form)
	require.NotNil(t, decoded.Form.Nombre)
	assert.Empty(t, *decoded.Form.Nombre, "empty collected answer must survive")
	assert.Nil(t, decoded.Form.Canal, "uncollected field must stay nil")
}

func TestNewSessionStartsBlankAtWelcome(t *testing.T) {
	st := intake.NewSession()

	assert.Equal(t, intake.StepWelcome, st.Step)
	assert.Equal(t, intake.Form{}, st.Form)
}
