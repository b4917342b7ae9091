package ui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"techstore/internal/auth"
)

// Auth form field indices.
const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldConfirm
)

func (m *Model) initAuthInputs() {
	inputs := make([]textinput.Model, 4)

	name := textinput.New()
	name.Prompt = "Name      > "
	name.Placeholder = "Jane Doe"
	name.CharLimit = 64
	inputs[fieldName] = name

	email := textinput.New()
	email.Prompt = "Email     > "
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	inputs[fieldEmail] = email

	password := textinput.New()
	password.Prompt = "Password  > "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64
	inputs[fieldPassword] = password

	confirm := textinput.New()
	confirm.Prompt = "Confirm   > "
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	confirm.CharLimit = 64
	inputs[fieldConfirm] = confirm

	m.authInputs = inputs
	m.authFocus = fieldEmail
	m.authInputs[fieldEmail].Focus()
}

// authFields returns the active field indices for the current form mode.
func (m *Model) authFields() []int {
	if m.authRegister {
		return []int{fieldName, fieldEmail, fieldPassword, fieldConfirm}
	}
	return []int{fieldEmail, fieldPassword}
}

// focusAuthField moves input focus to the given field.
func (m *Model) focusAuthField(idx int) {
	for i := range m.authInputs {
		if i == idx {
			m.authInputs[i].Focus()
		} else {
			m.authInputs[i].Blur()
		}
	}
	m.authFocus = idx
}

// moveAuthFocus advances focus through the active fields by delta.
func (m *Model) moveAuthFocus(delta int) {
	fields := m.authFields()
	pos := 0
	for i, f := range fields {
		if f == m.authFocus {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	m.focusAuthField(fields[pos])
}

// resetAuthForm clears all field values and errors.
func (m *Model) resetAuthForm() {
	for i := range m.authInputs {
		m.authInputs[i].SetValue("")
	}
	m.authErrs = nil
	if m.authRegister {
		m.focusAuthField(fieldName)
	} else {
		m.focusAuthField(fieldEmail)
	}
}

// handleAuthFormKey processes keyboard input for the signed-out account form.
func (m Model) handleAuthFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.currentView = ViewBrowse
		return m, nil

	case "tab", "down":
		m.moveAuthFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveAuthFocus(-1)
		return m, nil

	case "ctrl+r":
		m.authRegister = !m.authRegister
		m.resetAuthForm()
		return m, nil

	case "enter":
		return m.submitAuthForm()
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

// submitAuthForm runs login or registration with the current field values.
func (m Model) submitAuthForm() (tea.Model, tea.Cmd) {
	email := m.authInputs[fieldEmail].Value()
	password := m.authInputs[fieldPassword].Value()

	var (
		user auth.User
		err  error
	)
	if m.authRegister {
		name := m.authInputs[fieldName].Value()
		confirm := m.authInputs[fieldConfirm].Value()
		user, err = m.session.Register(name, email, password, confirm)
	} else {
		user, err = m.session.Login(email, password)
	}

	if err != nil {
		var fieldErrs auth.FieldErrors
		if errors.As(err, &fieldErrs) {
			m.authErrs = fieldErrs
		}
		return m, nil
	}

	m.resetAuthForm()
	m.currentView = ViewBrowse
	return m, m.setStatus("Welcome, " + user.Name)
}

// handleAccountKey processes keyboard input for the signed-in account view.
func (m Model) handleAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "o" {
		m.session.Logout()
		m.resetAuthForm()
		return m, m.setStatus("Signed out")
	}
	return m, nil
}

// renderAccount renders either the profile or the login/register form.
func (m Model) renderAccount() string {
	contentHeight := m.height - 2

	if user, ok := m.session.User(); ok {
		return m.renderProfile(user, contentHeight)
	}
	return m.renderAuthForm(contentHeight)
}

func (m Model) renderProfile(user auth.User, contentHeight int) string {
	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	var b strings.Builder
	b.WriteString(bg.Render(user.Name, styles.Text.Bold(true)))
	b.WriteString("\n")
	b.WriteString(bg.Render(user.Email, styles.MutedText))
	b.WriteString("\n\n")
	b.WriteString(bg.Render("Cart:", styles.MutedText) + bg.Space() +
		bg.Render(strconv.Itoa(m.cart.Len()), styles.Text) + bg.Spaces(2) +
		bg.Render("Wishlist:", styles.MutedText) + bg.Space() +
		bg.Render(strconv.Itoa(m.wishlist.Len()), styles.Text))
	b.WriteString("\n\n")
	b.WriteString(bg.Render("o: sign out", styles.FaintText))

	box := m.renderTitledBox("Account", b.String(), min(m.width, 60), min(contentHeight, 10), false)
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)))
}

func (m Model) renderAuthForm(contentHeight int) string {
	bgColor := m.theme.SurfaceAlt
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles().WithBackground(bgColor)

	title := "Sign In"
	toggle := "ctrl+r: create an account"
	if m.authRegister {
		title = "Join TechStore"
		toggle = "ctrl+r: sign in instead"
	}

	fieldErr := func(field string) string {
		if m.authErrs == nil {
			return ""
		}
		return m.authErrs.Field(field)
	}

	var b strings.Builder
	for _, idx := range m.authFields() {
		b.WriteString(m.authInputs[idx].View())
		b.WriteString("\n")
		if msg := fieldErr(fieldNameFor(idx)); msg != "" {
			b.WriteString(bg.Render("  "+msg, styles.DangerText))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(bg.Render("enter: submit", styles.FaintText) + bg.Spaces(2) +
		bg.Render(toggle, styles.FaintText))

	box := m.renderTitledBox(title, b.String(), min(m.width, 60), min(contentHeight, 14), true)
	return lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)))
}

// fieldNameFor maps a form input index to its validation field name.
func fieldNameFor(idx int) string {
	switch idx {
	case fieldName:
		return auth.FieldName
	case fieldEmail:
		return auth.FieldEmail
	case fieldPassword:
		return auth.FieldPassword
	case fieldConfirm:
		return auth.FieldConfirm
	default:
		return ""
	}
}

