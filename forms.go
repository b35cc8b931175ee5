package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/Rshep3087/triptui/currency"
	"github.com/Rshep3087/triptui/trip"
)

type formKind int

const (
	addAmountForm formKind = iota
	setAmountForm
	addCategoryForm
	renameCategoryForm
	deleteCategoryForm
	addDateForm
	editDateForm
	deleteDateForm
	addTripForm
	deleteTripForm
)

func (k formKind) String() string {
	switch k {
	case addAmountForm:
		return "add amount"
	case setAmountForm:
		return "set amount"
	case addCategoryForm:
		return "add category"
	case renameCategoryForm:
		return "rename category"
	case deleteCategoryForm:
		return "delete category"
	case addDateForm:
		return "add date"
	case editDateForm:
		return "edit date"
	case deleteDateForm:
		return "delete date"
	case addTripForm:
		return "add trip"
	case deleteTripForm:
		return "delete trip"
	}

	return "unknown"
}

// formTarget is the trip, category and record a form was opened on.
type formTarget struct {
	trip     string
	category string
	index    int
	current  decimal.Decimal
	date     string
}

func validateAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("amount is required")
	}
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return errors.New("amount must be a valid number")
	}
	return nil
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("date is required")
	}
	if _, err := time.Parse(trip.DateLayout, strings.TrimSpace(s)); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	return nil
}

func validateName(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func newAmountForm(kind formKind, target formTarget, code string) *huh.Form {
	title := fmt.Sprintf("Add to %s on %s", titleCaser.String(target.category), formatDate(target.date))
	description := fmt.Sprintf("Currently %s. Negative amounts subtract.", currency.Format(target.current, code))
	value := ""
	if kind == setAmountForm {
		title = fmt.Sprintf("Set %s on %s", titleCaser.String(target.category), formatDate(target.date))
		description = "The new amount for this cell"
		value = target.current.String()
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Key("amount").
				Value(&value).
				Placeholder("0.00").
				Validate(validateAmount),
		),
	)
}

func newNameForm(title, description, value string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Key("name").
				Value(&value).
				Validate(validateName("name")),
		),
	)
}

func newDateForm(title, value string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Date (YYYY-MM-DD)").
				Key("date").
				Value(&value).
				Placeholder("YYYY-MM-DD").
				Validate(validateDate),
		),
	)
}

func newConfirmForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Cancel").
				Key("confirm"),
		),
	)
}

// buildForm returns the form for kind opened on target.
func (m model) buildForm(kind formKind, target formTarget) *huh.Form {
	switch kind {
	case addAmountForm, setAmountForm:
		return newAmountForm(kind, target, m.config.Currency)
	case addCategoryForm:
		return newNameForm("New category", fmt.Sprintf("Added to every date of %s", target.trip), "")
	case renameCategoryForm:
		return newNameForm(
			fmt.Sprintf("Rename %s", titleCaser.String(target.category)),
			"An existing category with the new name is overwritten",
			target.category,
		)
	case deleteCategoryForm:
		return newConfirmForm(fmt.Sprintf("Delete category %s from %s?", titleCaser.String(target.category), target.trip))
	case addDateForm:
		return newDateForm(fmt.Sprintf("Add a date to %s", target.trip), time.Now().Format(trip.DateLayout))
	case editDateForm:
		return newDateForm(fmt.Sprintf("Change %s", formatDate(target.date)), target.date)
	case deleteDateForm:
		return newConfirmForm(fmt.Sprintf("Delete %s from %s?", formatDate(target.date), target.trip))
	case addTripForm:
		return newNameForm("New trip", "The trip starts with today's date and a fare", "")
	case deleteTripForm:
		return newConfirmForm(fmt.Sprintf("Delete trip %s?", target.trip))
	}
	return nil
}

// openForm shows the form for kind on the cell under the cursor.
func (m *model) openForm(kind formKind) (tea.Model, tea.Cmd) {
	t := m.selectedTrip()
	target := formTarget{trip: t.Name}

	if category, index, ok := m.cursorCell(); ok {
		target.category = category
		target.index = index
		target.date = t.Expenses[index].Date
		target.current, _ = t.Expenses[index].Categories.Get(category)
	}

	m.form = m.buildForm(kind, target)
	if m.form == nil {
		return m, nil
	}

	log.Debug("opening form", "form", kind.String(), "trip", target.trip, "category", target.category, "index", target.index)
	m.formKind = kind
	m.formTarget = target
	m.previousSessionState = m.sessionState
	m.sessionState = formState

	if m.width > 0 {
		h, _ := m.styles.docStyle.GetFrameSize()
		m.form = m.form.WithWidth(m.width - h)
	}

	return m, m.form.Init()
}

// formValues are the answers read back from a completed form.
type formValues struct {
	amount  string
	name    string
	date    string
	confirm bool
}

func readForm(f *huh.Form) formValues {
	return formValues{
		amount:  f.GetString("amount"),
		name:    f.GetString("name"),
		date:    f.GetString("date"),
		confirm: f.GetBool("confirm"),
	}
}

// submitForm applies the completed form to the tracker.
func (m *model) submitForm() {
	m.applyForm(readForm(m.form))
}

// applyForm runs the change the open form describes. Rejected changes are
// reported on the status line and leave the trips untouched.
func (m *model) applyForm(values formValues) {
	target := m.formTarget
	ctx := m.ctx()

	var (
		err  error
		done string
	)

	switch m.formKind {
	case addAmountForm:
		var delta decimal.Decimal
		if delta, err = parseAmount(values.amount); err != nil {
			break
		}
		err = m.tracker.AddToAmount(ctx, target.trip, target.index, target.category, delta)
		done = fmt.Sprintf("Added %s to %s", currency.Format(delta, m.config.Currency), titleCaser.String(target.category))

	case setAmountForm:
		var value decimal.Decimal
		if value, err = parseAmount(values.amount); err != nil {
			break
		}
		err = m.tracker.SetAmount(ctx, target.trip, target.index, target.category, value)
		done = fmt.Sprintf("Set %s to %s", titleCaser.String(target.category), currency.Format(value, m.config.Currency))

	case addCategoryForm:
		name := values.name
		err = m.tracker.AddCategory(ctx, target.trip, name)
		done = fmt.Sprintf("Added category %s", strings.TrimSpace(name))

	case renameCategoryForm:
		name := values.name
		err = m.tracker.RenameCategory(ctx, target.trip, target.category, name)
		done = fmt.Sprintf("Renamed %s to %s", target.category, strings.TrimSpace(name))

	case deleteCategoryForm:
		if !values.confirm {
			m.setStatus("Cancelled", false)
			return
		}
		err = m.tracker.DeleteCategory(ctx, target.trip, target.category)
		done = fmt.Sprintf("Deleted category %s", target.category)

	case addDateForm:
		date := values.date
		err = m.tracker.AddDate(ctx, target.trip, date)
		done = fmt.Sprintf("Added %s", formatDate(strings.TrimSpace(date)))
		if err == nil {
			m.cursorCol = len(m.selectedTrip().Expenses) - 1
		}

	case editDateForm:
		date := values.date
		err = m.tracker.EditDate(ctx, target.trip, target.index, date)
		done = fmt.Sprintf("Changed %s to %s", formatDate(target.date), formatDate(strings.TrimSpace(date)))

	case deleteDateForm:
		if !values.confirm {
			m.setStatus("Cancelled", false)
			return
		}
		err = m.tracker.DeleteDate(ctx, target.trip, target.index)
		done = fmt.Sprintf("Deleted %s", formatDate(target.date))

	case addTripForm:
		name := values.name
		err = m.tracker.AddTrip(ctx, name)
		done = fmt.Sprintf("Added trip %s", strings.TrimSpace(name))
		if err == nil {
			m.resetCursor()
		}

	case deleteTripForm:
		if !values.confirm {
			m.setStatus("Cancelled", false)
			return
		}
		err = m.tracker.DeleteTrip(ctx, target.trip)
		done = fmt.Sprintf("Deleted trip %s", target.trip)
		if err == nil {
			m.resetCursor()
		}
	}

	if err != nil {
		m.setStatus(rejectionNotice(err), true)
		return
	}

	m.setStatus(done, false)
	m.refreshViews()
}

// rejectionNotice turns a mutation error into a status line message.
func rejectionNotice(err error) string {
	var ve *trip.ValidationError
	if errors.As(err, &ve) {
		return fmt.Sprintf("Not allowed: %s", ve.Reason)
	}
	if trip.IsNotFound(err) {
		return fmt.Sprintf("Not found: %s", err)
	}
	return fmt.Sprintf("Error: %s", err)
}
