package intake_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pqrchat/backend/internal/config"
	"pqrchat/backend/internal/faq"
	"pqrchat/backend/internal/intake"
)

// MockSink is a mock implementation of the intake.Sink interface.
type MockSink struct {
	mock.Mock
}

func (m *MockSink) AppendInteraction(ctx context.Context, sessionID, userText, botText string) error {
	args := m.Called(sessionID, userText, botText)
	return args.Error(0)
}

func (m *MockSink) AppendSubmission(ctx context.Context, form intake.Form) (string, error) {
	args := m.Called(form)
	return args.String(0), args.Error(1)
}

func newTestEngine(sink *MockSink) *intake.Engine {
	retriever := faq.NewRetriever(faq.DefaultCorpus(), config.SimilarityThreshold)
	return intake.NewEngine(retriever, sink)
}

func anyInteraction(sink *MockSink) {
	sink.On("AppendInteraction", mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

// TestFullHappyPath walks the entire collection sequence through to a
// committed submission and checks the confirmed record.
func TestFullHappyPath(t *testing.T) {
	// Arrange
	sink := new(MockSink)
	anyInteraction(sink)
	var submitted intake.Form
	sink.On("AppendSubmission", mock.AnythingOfType("intake.Form")).
		Run(func(args mock.Arguments) { submitted = args.Get(0).(intake.Form) }).
		Return("PQR-20250901120000-A1B2C3", nil).Once()

	engine := newTestEngine(sink)
	st := intake.NewSession()
	ctx := context.Background()

	inputs := []string{
		"p", "Jane Doe", "A1234", "jane@x.com", "+1 555-1234",
		"DC", "Bogota", "email", "billing issue", "si",
	}
	expectedSteps := []intake.Step{
		intake.StepNombre, intake.StepDocumento, intake.StepEmail,
		intake.StepTelefono, intake.StepDepartamento, intake.StepMunicipio,
		intake.StepCanal, intake.StepDescripcion, intake.StepAutorizo,
		intake.StepConfirmar,
	}

	// Act - collection phase
	for i, input := range inputs {
		engine.Handle(ctx, "s1", input, st)
		assert.Equal(t, expectedSteps[i], st.Step, "after input %q", input)
	}

	// The confirmation prompt renders the summary before asking.
	require.Equal(t, intake.StepConfirmar, st.Step)
	require.NotNil(t, st.Form.Tipo)
	assert.Equal(t, "Petición", *st.Form.Tipo)

	// Act - confirmation
	reply := engine.Handle(ctx, "s1", "confirmar", st)

	// Assert
	assert.Contains(t, reply, "PQR-20250901120000-A1B2C3")
	assert.Equal(t, intake.StepWelcome, st.Step, "session resets after commit")
	assert.Equal(t, intake.Form{}, st.Form)

	sink.AssertExpectations(t)
	require.NotNil(t, submitted.Tipo)
	require.NotNil(t, submitted.Nombre)
	assert.Equal(t, "Petición", *submitted.Tipo)
	assert.Equal(t, "Jane Doe", *submitted.Nombre)
}

func TestConfirmationSummaryListsCollectedFields(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	engine := newTestEngine(sink)
	st := &intake.Session{Step: intake.StepAutorizo}

	reply := engine.Handle(context.Background(), "s1", "si", st)

	assert.Equal(t, intake.StepConfirmar, st.Step)
	assert.Contains(t, reply, "Confirma para radicar")
	assert.Contains(t, reply, "Tipo: —", "uncollected fields show the placeholder")
	assert.Contains(t, reply, "Autorizo: si")
	assert.Contains(t, reply, "'confirmar' o 'reiniciar'")
}

// TestInvalidInputsDoNotAdvance covers the validated steps: a malformed value
// leaves the step and the form untouched and re-prompts.
func TestInvalidInputsDoNotAdvance(t *testing.T) {
	cases := []struct {
		step  intake.Step
		input string
		reply string
	}{
		{intake.StepDocumento, "ab", intake.ReplyInvalidDocumento},
		{intake.StepEmail, "bad-email-no-at", intake.ReplyInvalidEmail},
		{intake.StepTelefono, "abc", intake.ReplyInvalidTelefono},
	}

	for _, c := range cases {
		sink := new(MockSink)
		anyInteraction(sink)
		engine := newTestEngine(sink)
		st := &intake.Session{Step: c.step}

		reply := engine.Handle(context.Background(), "s1", c.input, st)

		assert.Equal(t, c.reply, reply)
		assert.Equal(t, c.step, st.Step, "step must not advance")
		assert.Equal(t, intake.Form{}, st.Form, "form must not be mutated")
	}
}

func TestWelcomeRejectsUnknownSelector(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	engine := newTestEngine(sink)
	st := intake.NewSession()

	reply := engine.Handle(context.Background(), "s1", "zzz", st)

	assert.Equal(t, intake.PromptType, reply)
	assert.Equal(t, intake.StepWelcome, st.Step)
	assert.Nil(t, st.Form.Tipo)
}

func TestWelcomeSelectorsMapToCanonicalLabels(t *testing.T) {
	cases := map[string]string{
		"p":       "Petición",
		"Q":       "Queja",
		"queja":   "Queja",
		"RECLAMO": "Reclamo",
		" s ":     "Sugerencia",
	}

	for input, label := range cases {
		sink := new(MockSink)
		anyInteraction(sink)
		engine := newTestEngine(sink)
		st := intake.NewSession()

		reply := engine.Handle(context.Background(), "s1", input, st)

		require.NotNil(t, st.Form.Tipo, "selector %q", input)
		assert.Equal(t, label, *st.Form.Tipo)
		assert.Equal(t, intake.StepNombre, st.Step)
		assert.Contains(t, reply, "Tipo "+label)
	}
}

// TestWelcomeFAQSupplement: a near-corpus question at welcome gets the canned
// answer prepended to the standard re-prompt without advancing the step.
func TestWelcomeFAQSupplement(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	engine := newTestEngine(sink)
	st := intake.NewSession()

	reply := engine.Handle(context.Background(), "s1", "¿Qué es una PQR?", st)

	assert.Contains(t, reply, "PQR significa Petición, Queja, Reclamo o Sugerencia.")
	assert.Contains(t, reply, intake.PromptType)
	assert.Equal(t, intake.StepWelcome, st.Step)
}

func TestFAQOnlyAtWelcomeStep(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	engine := newTestEngine(sink)
	st := &intake.Session{Step: intake.StepDescripcion}

	// At a free-text step the question is just the collected value.
	reply := engine.Handle(context.Background(), "s1", "¿Qué es una PQR?", st)

	assert.Equal(t, intake.PromptAutorizo, reply)
	assert.NotContains(t, reply, "PQR significa")
	require.NotNil(t, st.Form.Descripcion)
	assert.Equal(t, "¿Qué es una PQR?", *st.Form.Descripcion)
}

// TestResetFromEveryStep: the global reset is reachable from every step, in
// any case and with surrounding whitespace.
func TestResetFromEveryStep(t *testing.T) {
	steps := []intake.Step{
		intake.StepWelcome, intake.StepNombre, intake.StepDocumento,
		intake.StepEmail, intake.StepTelefono, intake.StepDepartamento,
		intake.StepMunicipio, intake.StepCanal, intake.StepDescripcion,
		intake.StepAutorizo, intake.StepConfirmar,
	}
	commands := []string{"reiniciar", " RESET ", "/reset"}

	for i, step := range steps {
		sink := new(MockSink)
		anyInteraction(sink)
		engine := newTestEngine(sink)
		st := &intake.Session{Step: step, Form: intake.Form{Tipo: strptr("Queja")}}

		reply := engine.Handle(context.Background(), "s1", commands[i%len(commands)], st)

		assert.Equal(t, intake.ReplyRestart, reply, "step %s", step)
		assert.Equal(t, intake.StepWelcome, st.Step)
		assert.Equal(t, intake.Form{}, st.Form)
	}
}

func TestConfirmRequiresKeyword(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	engine := newTestEngine(sink)
	form := intake.Form{Tipo: strptr("Queja"), Nombre: strptr("Jane")}
	st := &intake.Session{Step: intake.StepConfirmar, Form: form}

	reply := engine.Handle(context.Background(), "s1", "ok", st)

	assert.Equal(t, intake.ReplyConfirmHint, reply)
	assert.Equal(t, intake.StepConfirmar, st.Step, "step unchanged")
	assert.Equal(t, form, st.Form, "form unchanged")
	sink.AssertNotCalled(t, "AppendSubmission", mock.Anything)
}

func TestConfirmAcceptsPrefixCaseInsensitive(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	sink.On("AppendSubmission", mock.AnythingOfType("intake.Form")).
		Return("PQR-20250901120000-FFFFFF", nil).Once()
	engine := newTestEngine(sink)
	st := &intake.Session{Step: intake.StepConfirmar}

	reply := engine.Handle(context.Background(), "s1", "CONFIRMAR ya", st)

	assert.Contains(t, reply, "PQR-20250901120000-FFFFFF")
	assert.Equal(t, intake.StepWelcome, st.Step)
	sink.AssertExpectations(t)
}

// TestSubmissionFailureNeverFabricatesAnID: when the sink rejects the append,
// the reply explains the failure, contains no identifier, and the session
// stays at confirmar so the user can retry or reset.
func TestSubmissionFailureNeverFabricatesAnID(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	sink.On("AppendSubmission", mock.AnythingOfType("intake.Form")).
		Return("", assert.AnError).Once()
	engine := newTestEngine(sink)
	form := intake.Form{Tipo: strptr("Reclamo")}
	st := &intake.Session{Step: intake.StepConfirmar, Form: form}

	reply := engine.Handle(context.Background(), "s1", "confirmar", st)

	assert.Equal(t, intake.ReplySubmitFailed, reply)
	assert.NotContains(t, reply, "PQR-")
	assert.Equal(t, intake.StepConfirmar, st.Step)
	assert.Equal(t, form, st.Form, "collected data survives the failure")
}

func TestUnknownStepRepliesWithoutResetting(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	engine := newTestEngine(sink)
	form := intake.Form{Tipo: strptr("Queja")}
	st := &intake.Session{Step: intake.Step("tampered"), Form: form}

	reply := engine.Handle(context.Background(), "s1", "hola", st)

	assert.Equal(t, intake.ReplyUnknown, reply)
	assert.Equal(t, intake.Step("tampered"), st.Step, "no auto-reset")
	assert.Equal(t, form, st.Form)
}

// TestEveryTurnLogsExactlyOneInteraction covers the side-effect contract:
// valid input, invalid input, resets, and FAQ turns each append one record.
func TestEveryTurnLogsExactlyOneInteraction(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	engine := newTestEngine(sink)
	st := intake.NewSession()
	ctx := context.Background()

	engine.Handle(ctx, "s1", "¿Qué es una PQR?", st) // FAQ turn
	engine.Handle(ctx, "s1", "p", st)                // valid selector
	engine.Handle(ctx, "s1", "Jane Doe", st)         // free text
	engine.Handle(ctx, "s1", "reset", st)            // reset branch

	sink.AssertNumberOfCalls(t, "AppendInteraction", 4)
}

func TestInteractionLogFailureIsNonFatal(t *testing.T) {
	sink := new(MockSink)
	sink.On("AppendInteraction", mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)
	engine := newTestEngine(sink)
	st := intake.NewSession()

	reply := engine.Handle(context.Background(), "s1", "p", st)

	assert.Contains(t, reply, "Tipo Petición", "reply unaffected by a failed log append")
	assert.Equal(t, intake.StepNombre, st.Step)
}

func TestFreeTextStepsAcceptAnyInput(t *testing.T) {
	sink := new(MockSink)
	anyInteraction(sink)
	engine := newTestEngine(sink)
	st := &intake.Session{Step: intake.StepNombre}

	// Preserved behavior: even an empty answer is accepted at free-text steps.
	engine.Handle(context.Background(), "s1", "", st)

	require.NotNil(t, st.Form.Nombre)
	assert.Empty(t, *st.Form.Nombre)
	assert.Equal(t, intake.StepDocumento, st.Step)
}
