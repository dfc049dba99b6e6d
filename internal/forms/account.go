package forms

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/dto"
)

// AccountForm is the trimmed account dialog input.
type AccountForm struct {
	Code            string `form:"code" validate:"required,max=32"`
	Name            string `form:"name" validate:"required,max=255"`
	AccountType     string `form:"accountType" validate:"required,oneof=asset liability equity revenue expense"`
	ParentAccountID string `form:"parentAccountID"`
	Balance         string `form:"balance" validate:"omitempty,numeric"`
	Status          string `form:"status" validate:"omitempty,oneof=active inactive archived"`
	Description     string `form:"description" validate:"max=2000"`
}

// AccountDraft is the output of the account dialog.
type AccountDraft = Draft[dto.CreateAccountRequest, dto.UpdateAccountRequest]

// AccountDialog edits Existing, or creates a new account when it is nil.
type AccountDialog struct {
	Existing *domain.Account
}

func (d AccountDialog) readInput(f Fields) AccountForm {
	in := AccountForm{
		Code:            f.get("code"),
		Name:            f.get("name"),
		AccountType:     f.get("accountType"),
		ParentAccountID: f.get("parentAccountID"),
		Balance:         f.get("balance"),
		Status:          f.get("status"),
		Description:     f.get("description"),
	}
	// Fields left out of an edit keep their current values for validation.
	if e := d.Existing; e != nil {
		if !f.has("code") {
			in.Code = e.Code
		}
		if !f.has("name") {
			in.Name = e.Name
		}
		if !f.has("accountType") {
			in.AccountType = string(e.AccountType)
		}
	}
	return in
}

// Draft shapes the raw fields.
func (d AccountDialog) Draft(f Fields) (AccountDraft, error) {
	in := d.readInput(f)
	if err := check(in); err != nil {
		return AccountDraft{}, err
	}

	if d.Existing == nil {
		balance, err := parseAmount(in.Balance)
		if err != nil {
			return AccountDraft{}, err
		}
		return AccountDraft{Create: &dto.CreateAccountRequest{
			Code:            in.Code,
			Name:            in.Name,
			AccountType:     domain.AccountType(in.AccountType),
			ParentAccountID: optional(in.ParentAccountID),
			Balance:         balance,
			Status:          enumOr(in.Status, domain.AccountActive),
			Description:     in.Description,
		}}, nil
	}

	e := d.Existing
	balance, err := changedAmount(in.Balance, e.Balance)
	if err != nil {
		return AccountDraft{}, err
	}
	upd := dto.UpdateAccountRequest{
		Code:        changed(in.Code, e.Code),
		Name:        changed(in.Name, e.Name),
		AccountType: changedEnum(in.AccountType, e.AccountType),
		Balance:     balance,
		Status:      changedEnum(in.Status, e.Status),
	}
	if f.has("parentAccountID") {
		upd.ParentAccountID = changedOptional(in.ParentAccountID, e.ParentAccountID)
	}
	if f.has("description") {
		upd.Description = changed(in.Description, e.Description)
	}
	return AccountDraft{ID: e.AccountID, Update: &upd}, nil
}

// Submit shapes the fields and hands the draft to save.
func (d AccountDialog) Submit(ctx context.Context, f Fields, save SaveFunc[dto.CreateAccountRequest, dto.UpdateAccountRequest]) error {
	draft, err := d.Draft(f)
	if err != nil {
		return err
	}
	return submitDraft(ctx, draft, func(u dto.UpdateAccountRequest) bool { return u.ToPatch().IsEmpty() }, save)
}
