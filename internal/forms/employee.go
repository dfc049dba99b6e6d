package forms

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/notify"
)

// MsgDepartmentRequired is reported when inline department creation is missing input.
const MsgDepartmentRequired = "Department name and code are required"

// EmployeeForm is the trimmed employee dialog input.
type EmployeeForm struct {
	FirstName   string `form:"firstName" validate:"required,max=100"`
	LastName    string `form:"lastName" validate:"required,max=100"`
	Email       string `form:"email" validate:"required,email"`
	Phone       string `form:"phone" validate:"max=64"`
	Address     string `form:"address"`
	DateOfBirth string `form:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `form:"gender" validate:"omitempty,oneof=male female other prefer_not_to_say"`

	Position         string `form:"position" validate:"required,max=100"`
	EmploymentType   string `form:"employmentType" validate:"omitempty,oneof=full_time part_time contract intern"`
	EmploymentStatus string `form:"employmentStatus" validate:"omitempty,oneof=active on_leave terminated"`
	HireDate         string `form:"hireDate" validate:"required,datetime=2006-01-02"`

	Salary           string `form:"salary" validate:"omitempty,numeric"`
	Currency         string `form:"currency" validate:"omitempty,oneof=USD EUR GBP INR JPY CAD AUD"`
	PaymentFrequency string `form:"paymentFrequency" validate:"omitempty,oneof=weekly biweekly monthly annually"`

	Notes string `form:"notes"`
}

// EmployeeDraft is the output of the employee dialog.
type EmployeeDraft = Draft[dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]

// DepartmentCreator persists a department created from inside the dialog.
// It reports its own failures to the user.
type DepartmentCreator func(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error)

// EmployeeDialog collects one employee and tracks the department selection,
// which may point at a department created inline.
type EmployeeDialog struct {
	existing    *domain.Employee
	creator     DepartmentCreator
	notifier    notify.Notifier
	mu          sync.Mutex
	departments []domain.Department
	selected    string
}

// NewEmployeeDialog opens the dialog for existing, or for a new employee when it is nil.
// departments lists the valid selections; a nil list accepts any id.
func NewEmployeeDialog(existing *domain.Employee, departments []domain.Department, creator DepartmentCreator, notifier notify.Notifier) *EmployeeDialog {
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}
	d := &EmployeeDialog{
		existing:    existing,
		creator:     creator,
		notifier:    notifier,
		departments: departments,
	}
	if existing != nil && existing.DepartmentID != nil {
		d.selected = *existing.DepartmentID
	}
	return d
}

// DepartmentID returns the current selection; empty means none.
func (d *EmployeeDialog) DepartmentID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selected
}

// Departments returns the selectable departments, including any created inline.
func (d *EmployeeDialog) Departments() []domain.Department {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Department, len(d.departments))
	copy(out, d.departments)
	return out
}

// SelectDepartment changes the selection. An empty id clears it.
func (d *EmployeeDialog) SelectDepartment(id string) error {
	id = strings.TrimSpace(id)
	d.mu.Lock()
	defer d.mu.Unlock()
	if id != "" && d.departments != nil && !d.known(id) {
		return fmt.Errorf("%w: department %s", apperrors.ErrInvalidReference, id)
	}
	d.selected = id
	return nil
}

func (d *EmployeeDialog) known(id string) bool {
	for _, dep := range d.departments {
		if dep.DepartmentID == id {
			return true
		}
	}
	return false
}

// CreateDepartmentInline creates a department through the creator and selects it.
// Blank input is reported as a notification without calling the creator.
func (d *EmployeeDialog) CreateDepartmentInline(ctx context.Context, name, code string) (string, error) {
	name = strings.TrimSpace(name)
	code = strings.ToUpper(strings.TrimSpace(code))
	if name == "" || code == "" {
		d.notifier.Notify(ctx, notify.Failed(MsgDepartmentRequired, ""))
		return "", fmt.Errorf("%w: %s", apperrors.ErrValidation, MsgDepartmentRequired)
	}
	if d.creator == nil {
		return "", fmt.Errorf("%w: inline department creation is not available", apperrors.ErrValidation)
	}

	dep, err := d.creator(ctx, dto.CreateDepartmentRequest{Name: name, Code: code})
	if err != nil {
		return "", err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.departments != nil {
		d.departments = append(d.departments, *dep)
	}
	d.selected = dep.DepartmentID
	return dep.DepartmentID, nil
}

func (d *EmployeeDialog) readInput(f Fields) EmployeeForm {
	in := EmployeeForm{
		FirstName:        f.get("firstName"),
		LastName:         f.get("lastName"),
		Email:            strings.ToLower(f.get("email")),
		Phone:            f.get("phone"),
		Address:          f.get("address"),
		DateOfBirth:      f.get("dateOfBirth"),
		Gender:           f.get("gender"),
		Position:         f.get("position"),
		EmploymentType:   f.get("employmentType"),
		EmploymentStatus: f.get("employmentStatus"),
		HireDate:         f.get("hireDate"),
		Salary:           f.get("salary"),
		Currency:         strings.ToUpper(f.get("currency")),
		PaymentFrequency: f.get("paymentFrequency"),
		Notes:            f.get("notes"),
	}
	if e := d.existing; e != nil {
		keep := map[string]struct {
			dst *string
			cur string
		}{
			"firstName": {&in.FirstName, e.FirstName},
			"lastName":  {&in.LastName, e.LastName},
			"email":     {&in.Email, e.Email},
			"position":  {&in.Position, e.Position},
			"hireDate":  {&in.HireDate, e.HireDate.Format(dto.DateLayout)},
		}
		for key, k := range keep {
			if !f.has(key) {
				*k.dst = k.cur
			}
		}
	}
	return in
}

// Draft shapes the raw fields. A departmentID field moves the selection first.
func (d *EmployeeDialog) Draft(f Fields) (EmployeeDraft, error) {
	if f.has("departmentID") {
		if err := d.SelectDepartment(f.get("departmentID")); err != nil {
			return EmployeeDraft{}, err
		}
	}
	in := d.readInput(f)
	if err := check(in); err != nil {
		return EmployeeDraft{}, err
	}
	hire, err := time.Parse(dto.DateLayout, in.HireDate)
	if err != nil {
		return EmployeeDraft{}, fmt.Errorf("%w: hireDate: %v", apperrors.ErrValidation, err)
	}
	var dob *dto.Date
	if in.DateOfBirth != "" {
		t, err := time.Parse(dto.DateLayout, in.DateOfBirth)
		if err != nil {
			return EmployeeDraft{}, fmt.Errorf("%w: dateOfBirth: %v", apperrors.ErrValidation, err)
		}
		dob = &dto.Date{Time: t}
	}
	department := d.DepartmentID()

	if d.existing == nil {
		salary, err := parseAmount(in.Salary)
		if err != nil {
			return EmployeeDraft{}, err
		}
		return EmployeeDraft{Create: &dto.CreateEmployeeRequest{
			FirstName:        in.FirstName,
			LastName:         in.LastName,
			Email:            in.Email,
			Phone:            optional(in.Phone),
			Address:          optional(in.Address),
			DateOfBirth:      dob,
			Gender:           optional(in.Gender),
			DepartmentID:     optional(department),
			Position:         in.Position,
			EmploymentType:   enumOr(in.EmploymentType, domain.FullTime),
			EmploymentStatus: enumOr(in.EmploymentStatus, domain.EmploymentActive),
			HireDate:         dto.Date{Time: hire},
			Salary:           salary,
			Currency:         enumOr(in.Currency, domain.USD),
			PaymentFrequency: enumOr(in.PaymentFrequency, domain.Monthly),
			Notes:            optional(in.Notes),
		}}, nil
	}

	e := d.existing
	salary, err := changedAmount(in.Salary, e.Salary)
	if err != nil {
		return EmployeeDraft{}, err
	}
	upd := dto.UpdateEmployeeRequest{
		FirstName:        changed(in.FirstName, e.FirstName),
		LastName:         changed(in.LastName, e.LastName),
		Email:            changed(in.Email, e.Email),
		DepartmentID:     changedOptional(department, e.DepartmentID),
		Position:         changed(in.Position, e.Position),
		EmploymentType:   changedEnum(in.EmploymentType, e.EmploymentType),
		EmploymentStatus: changedEnum(in.EmploymentStatus, e.EmploymentStatus),
		Salary:           salary,
		Currency:         changedEnum(in.Currency, e.Currency),
		PaymentFrequency: changedEnum(in.PaymentFrequency, e.PaymentFrequency),
	}
	if !hire.Equal(e.HireDate) {
		upd.HireDate = &dto.Date{Time: hire}
	}
	// A partial update cannot clear the date of birth, only replace it.
	if dob != nil && !sameDay(dob, e.DateOfBirth) {
		upd.DateOfBirth = dob
	}
	if f.has("phone") {
		upd.Phone = changedOptional(in.Phone, e.Phone)
	}
	if f.has("address") {
		upd.Address = changedOptional(in.Address, e.Address)
	}
	if f.has("gender") {
		upd.Gender = changedOptional(in.Gender, e.Gender)
	}
	if f.has("notes") {
		upd.Notes = changedOptional(in.Notes, e.Notes)
	}
	return EmployeeDraft{ID: e.EmployeeID, Update: &upd}, nil
}

func sameDay(d *dto.Date, t *time.Time) bool {
	if t == nil {
		return false
	}
	return d.Format(dto.DateLayout) == t.Format(dto.DateLayout)
}

// Submit shapes the fields and hands the draft to save.
func (d *EmployeeDialog) Submit(ctx context.Context, f Fields, save SaveFunc[dto.CreateEmployeeRequest, dto.UpdateEmployeeRequest]) error {
	draft, err := d.Draft(f)
	if err != nil {
		return err
	}
	return submitDraft(ctx, draft, func(u dto.UpdateEmployeeRequest) bool { return u.ToPatch().IsEmpty() }, save)
}
