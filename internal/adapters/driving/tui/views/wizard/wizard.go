// Package wizard provides the application wizard view for the TUI.
package wizard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
)

// datePlaceholder hints the format accepted for date fields.
const datePlaceholder = "YYYY-MM-DD"

// field pairs a step input with its widget.
type field struct {
	spec  domain.FieldSpec
	input *input.Input
}

// View walks the user through one application session.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	applicationService driving.ApplicationService
	ctx                context.Context

	session      *domain.Session
	serviceTitle string
	fields       []field
	focus        int

	width  int
	height int
	ready  bool
	err    error
}

// NewView creates a new wizard view.
func NewView(s *styles.Styles, km *keymap.KeyMap, applicationService driving.ApplicationService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:             s,
		keymap:             km,
		statusbar:          status.NewBar(s, km),
		applicationService: applicationService,
		ctx:                context.Background(),
		width:              80,
		height:             24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Start shows a freshly opened session.
func (v *View) Start(session *domain.Session, serviceTitle string) tea.Cmd {
	v.serviceTitle = serviceTitle
	v.err = nil
	return v.SetSession(session)
}

// SetSession replaces the displayed session and rebuilds the step's fields.
func (v *View) SetSession(session *domain.Session) tea.Cmd {
	v.session = session
	v.fields = nil
	v.focus = 0
	if session == nil {
		return nil
	}

	for _, spec := range session.Step.Fields() {
		placeholder := spec.Placeholder
		if placeholder == "" && spec.Kind == domain.InputDate {
			placeholder = datePlaceholder
		}
		in := input.New(v.styles, spec.Label, placeholder)
		in.SetWidth(v.width)
		if value, err := session.Form.Get(spec.Field); err == nil {
			in.SetValue(value)
		}
		in.SetError(session.Errors[spec.Field])
		v.fields = append(v.fields, field{spec: spec, input: in})
	}

	// Land on the first field that needs attention.
	for i, f := range v.fields {
		if f.input.Error() != "" {
			v.focus = i
			break
		}
	}

	if session.Step.IsDataEntry() {
		v.statusbar.SetBindings(v.keymap.WizardHelp())
	} else {
		v.statusbar.SetBindings(v.keymap.ConfirmationHelp())
	}
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage(fmt.Sprintf("Step %d of %d", session.Step.Int(), domain.TotalSteps))

	return v.focusCurrent()
}

// Update handles messages for the wizard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SessionUpdated:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.err = nil
		return v, v.SetSession(msg.Session)

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	if f := v.focused(); f != nil {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.session == nil {
		return v, nil
	}
	keyStr := msg.String()

	// The confirmation step only offers the way back to the catalog.
	if !v.session.Step.IsDataEntry() {
		if keymap.Matches(keyStr, v.keymap.Back) || keymap.Matches(keyStr, v.keymap.Select) {
			return v, v.exit()
		}
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		return v, v.exit()

	case keymap.Matches(keyStr, v.keymap.NextStep), keymap.Matches(keyStr, v.keymap.Select):
		return v, v.advance(true)

	case keymap.Matches(keyStr, v.keymap.PrevStep):
		if !v.session.Step.ShowPrevious() {
			return v, nil
		}
		return v, v.advance(false)

	case keymap.Matches(keyStr, v.keymap.NextField):
		return v, v.moveFocus(1)

	case keymap.Matches(keyStr, v.keymap.PrevField):
		return v, v.moveFocus(-1)
	}

	f := v.focused()
	if f == nil {
		return v, nil
	}
	before := f.input.Value()
	if f.spec.Kind == domain.InputSelect {
		if keymap.Matches(keyStr, v.keymap.CycleOption) {
			cycleOption(f, keyStr == "right")
			v.inputChanged(f, before)
		}
		return v, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	v.inputChanged(f, before)
	return v, cmd
}

// inputChanged applies an edited value to the displayed session, which clears
// the field's error. Values reach the service when the step is submitted.
func (v *View) inputChanged(f *field, before string) {
	value := f.input.Value()
	if value == before {
		return
	}
	updated, err := domain.ApplyInputChange(*v.session, f.spec.Field, value)
	if err != nil {
		v.setError(err)
		return
	}
	v.session = &updated
	f.input.SetError("")
}

// cycleOption steps a select field through its options. An empty value
// moves to the first or last option.
func cycleOption(f *field, forward bool) {
	options := f.spec.Options
	if len(options) == 0 {
		return
	}
	current := -1
	for i, o := range options {
		if o.Value == f.input.Value() {
			current = i
			break
		}
	}

	var next int
	switch {
	case current < 0 && forward:
		next = 0
	case current < 0:
		next = len(options) - 1
	case forward:
		next = (current + 1) % len(options)
	default:
		next = (current + len(options) - 1) % len(options)
	}
	f.input.SetValue(options[next].Value)
}

func (v *View) focused() *field {
	if v.focus < 0 || v.focus >= len(v.fields) {
		return nil
	}
	return &v.fields[v.focus]
}

func (v *View) moveFocus(delta int) tea.Cmd {
	if len(v.fields) == 0 {
		return nil
	}
	v.focus = (v.focus + delta + len(v.fields)) % len(v.fields)
	return v.focusCurrent()
}

func (v *View) focusCurrent() tea.Cmd {
	var cmd tea.Cmd
	for i := range v.fields {
		if i == v.focus {
			cmd = v.fields[i].input.Focus()
			continue
		}
		v.fields[i].input.Blur()
	}
	return cmd
}

// values snapshots the current field contents.
func (v *View) values() map[domain.Field]string {
	out := make(map[domain.Field]string, len(v.fields))
	for _, f := range v.fields {
		out[f.spec.Field] = f.input.Value()
	}
	return out
}

// advance records the step's inputs then moves forwards or backwards.
func (v *View) advance(forward bool) tea.Cmd {
	id := v.session.ID
	values := v.values()
	order := make([]domain.Field, 0, len(v.fields))
	for _, f := range v.fields {
		order = append(order, f.spec.Field)
	}

	return func() tea.Msg {
		if v.applicationService == nil {
			return messages.SessionUpdated{Err: ErrNoApplicationService}
		}
		for _, name := range order {
			if _, err := v.applicationService.UpdateField(v.ctx, id, name, values[name]); err != nil {
				return messages.SessionUpdated{Err: err}
			}
		}

		var session *domain.Session
		var err error
		if forward {
			session, err = v.applicationService.Next(v.ctx, id)
		} else {
			session, err = v.applicationService.Previous(v.ctx, id)
		}
		return messages.SessionUpdated{Session: session, Err: err}
	}
}

// exit abandons the session. The catalog is shown even if the store fails.
func (v *View) exit() tea.Cmd {
	id := v.session.ID
	return func() tea.Msg {
		if v.applicationService == nil {
			return messages.ApplicationExited{Err: ErrNoApplicationService}
		}
		return messages.ApplicationExited{Err: v.applicationService.Exit(v.ctx, id)}
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
}

// View renders the wizard view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.session == nil {
		return v.styles.Error.Render(ErrNoSession.Error())
	}

	step := v.session.Step
	sections := []string{
		v.styles.Title.Render("GOV.UK"),
		v.styles.Subtitle.Render(v.serviceTitle),
		"",
	}

	if v.session.ShowProgress() {
		sections = append(sections, v.renderProgress(), "")
	}

	sections = append(sections,
		v.styles.Title.Render(step.Heading()),
		v.styles.Muted.Render(step.Intro()),
		"",
	)

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	if step.IsDataEntry() {
		sections = append(sections, v.renderFields(), "", v.renderActions())
	} else {
		sections = append(sections, v.renderConfirmation())
	}

	sections = append(sections, "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderProgress() string {
	markers := domain.Progress(v.session.Step)
	parts := make([]string, 0, len(markers))
	for _, m := range markers {
		label := fmt.Sprintf("%d. %s", m.Step.Int(), m.Title)
		switch m.State {
		case domain.MarkerCompleted:
			parts = append(parts, v.styles.Success.Render("✓ "+label))
		case domain.MarkerCurrent:
			parts = append(parts, v.styles.Selected.Render("● "+label))
		default:
			parts = append(parts, v.styles.Muted.Render("○ "+label))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.styles.Muted.Render(fmt.Sprintf("Step %d of %d", v.session.Step.Int(), domain.TotalSteps)),
		strings.Join(parts, "  "),
	)
}

func (v *View) renderFields() string {
	rows := make([]string, 0, len(v.fields))
	for i, f := range v.fields {
		if f.spec.Kind == domain.InputSelect {
			rows = append(rows, v.renderSelect(f, i == v.focus))
			continue
		}
		rows = append(rows, f.input.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *View) renderSelect(f field, focused bool) string {
	value := "Select an option"
	for _, o := range f.spec.Options {
		if o.Value == f.input.Value() {
			value = o.Label
			break
		}
	}

	box := v.styles.InputField
	if focused {
		box = v.styles.FocusedInput
	}
	lines := []string{v.styles.Subtitle.Render(f.spec.Label)}
	if f.input.Error() != "" {
		lines = append(lines, v.styles.Error.Render(f.input.Error()))
	}
	lines = append(lines, box.Render("‹ "+value+" ›"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *View) renderActions() string {
	step := v.session.Step
	actions := []string{v.styles.Selected.Render("[ctrl+n] " + step.PrimaryActionLabel())}
	if step.ShowPrevious() {
		actions = append(actions, v.styles.Normal.Render("[ctrl+p] Previous"))
	}
	actions = append(actions, v.styles.Muted.Render("[esc] Exit"))
	return strings.Join(actions, "   ")
}

func (v *View) renderConfirmation() string {
	form := v.session.Form
	lines := make([]string, 0, 20)
	for _, item := range form.Summary() {
		lines = append(lines, v.styles.Muted.Render(item.Label+": ")+v.styles.Normal.Render(item.Value))
	}
	lines = append(lines,
		"",
		v.styles.Normal.Render("Your application reference: ")+v.styles.Success.Render(v.session.Reference),
		v.styles.Muted.Render("Submitted on "+v.session.UpdatedAt.Format("2 January 2006")),
		"",
		v.styles.Subtitle.Render("What happens next"),
	)
	for _, s := range domain.NextSteps() {
		lines = append(lines, v.styles.Normal.Render("• "+s))
	}
	lines = append(lines, "", v.styles.Selected.Render("[enter] "+v.session.Step.PrimaryActionLabel()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	for _, f := range v.fields {
		f.input.SetWidth(width)
	}
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Session returns the displayed session.
func (v *View) Session() *domain.Session {
	return v.session
}

// ServiceTitle returns the title of the service being applied for.
func (v *View) ServiceTitle() string {
	return v.serviceTitle
}

// FocusedField returns the field with keyboard focus, or "" on the confirmation step.
func (v *View) FocusedField() domain.Field {
	if f := v.focused(); f != nil {
		return f.spec.Field
	}
	return ""
}

// Value returns the unsaved input for a field on the current step.
func (v *View) Value(name domain.Field) string {
	for _, f := range v.fields {
		if f.spec.Field == name {
			return f.input.Value()
		}
	}
	return ""
}

// SetValue fills a field on the current step.
func (v *View) SetValue(name domain.Field, value string) {
	for _, f := range v.fields {
		if f.spec.Field == name {
			f.input.SetValue(value)
			return
		}
	}
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// Reset clears the session from the view.
func (v *View) Reset() {
	v.session = nil
	v.serviceTitle = ""
	v.fields = nil
	v.focus = 0
	v.err = nil
	v.statusbar.Clear()
}
