// Package account exposes the account service's REST surface.
package account

import (
	"context"

	"github.com/bankingsystem/services/pkg/dto"
	"github.com/bankingsystem/services/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Service is the slice of the account orchestrator the handlers need.
type Service interface {
	CreateAccount(ctx context.Context, create dto.AccountCreate) (*dto.AccountRead, error)
	GetAccount(ctx context.Context, accountID int64) (*dto.AccountRead, error)
	ListAccounts(ctx context.Context, filter dto.AccountListFilter, page, size int) (*dto.Page[dto.AccountRead], error)
	UpdateAccount(ctx context.Context, accountID int64, update dto.AccountUpdate) (*dto.AccountRead, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}

// Routes registers the account endpoints:
//   - POST   /accounts             : create an account (customer must exist)
//   - GET    /accounts             : list accounts (iban/customerId filters, paginated)
//   - GET    /accounts/:accountId  : fetch one account
//   - PUT    /accounts/:accountId  : partial update of iban/bicSwift
//   - DELETE /accounts/:accountId  : delete, rejected while cards reference it
func Routes(app *fiber.App, svc Service) {
	app.Post("/accounts", Create(svc))
	app.Get("/accounts", List(svc))
	app.Get("/accounts/:accountId", GetByID(svc))
	app.Put("/accounts/:accountId", Update(svc))
	app.Delete("/accounts/:accountId", Delete(svc))
}

// Create handles account creation. The provided customerId must reference an
// existing customer in the customer service.
// @Summary Create a new account
// @Accept json
// @Produce json
// @Success 201 {object} dto.AccountRead
// @Failure 400 {object} common.ProblemDetails
// @Router /accounts [post]
func Create(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.CreateAccount(c.Context(), dto.AccountCreate{
			Iban:       input.Iban,
			BicSwift:   input.BicSwift,
			CustomerID: input.CustomerID,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// List handles the paginated, filtered listing. The cardAlias parameter is
// accepted for interface compatibility and currently ignored.
func List(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := dto.AccountListFilter{
			Iban:      c.Query("iban"),
			CardAlias: c.Query("cardAlias"),
		}
		if raw := c.Query("customerId"); raw != "" {
			id, err := common.QueryID(c, "customerId")
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customerId", err.Error())
			}
			filter.CustomerID = &id
		}
		result, err := svc.ListAccounts(c.Context(), filter, c.QueryInt("page", 0), c.QueryInt("size", 10))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}

func GetByID(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "accountId")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		account, err := svc.GetAccount(c.Context(), id)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(account)
	}
}

func Update(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "accountId")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		input, err := common.BindAndValidate[UpdateAccountRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.UpdateAccount(c.Context(), id, dto.AccountUpdate{
			Iban:     input.Iban,
			BicSwift: input.BicSwift,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}

func Delete(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "accountId")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account id", err.Error())
		}
		if err := svc.DeleteAccount(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(common.Response{
			Status:  fiber.StatusOK,
			Message: common.Message("account.deletion.successful", id),
		})
	}
}
