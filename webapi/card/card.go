// Package card exposes the card service's REST surface. PAN and CVV are
// masked in every response unless showSensitiveData=true is passed.
package card

import (
	"context"

	"github.com/bankingsystem/services/pkg/domain"
	"github.com/bankingsystem/services/pkg/dto"
	"github.com/bankingsystem/services/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Service is the slice of the card orchestrator the handlers need.
type Service interface {
	CreateCard(ctx context.Context, create dto.CardCreate) (*dto.CardRead, error)
	GetCard(ctx context.Context, cardID int64, showSensitiveData bool) (*dto.CardRead, error)
	ListCards(ctx context.Context, filter dto.CardListFilter, page, size int, showSensitiveData bool) (*dto.Page[dto.CardRead], error)
	UpdateCard(ctx context.Context, cardID int64, update dto.CardUpdate) (*dto.CardRead, error)
	DeleteCard(ctx context.Context, cardID int64) error
}

// Routes registers the card endpoints:
//   - POST   /card          : create a card (account must exist)
//   - GET    /card          : list cards (accountId/alias/pan/type filters, paginated)
//   - GET    /card/:id      : fetch one card
//   - PUT    /card/:cardId  : partial update of the alias
//   - DELETE /card/:cardId  : delete unconditionally
func Routes(app *fiber.App, svc Service) {
	app.Post("/card", Create(svc))
	app.Get("/card", List(svc))
	app.Get("/card/:id", GetByID(svc))
	app.Put("/card/:cardId", Update(svc))
	app.Delete("/card/:cardId", Delete(svc))
}

// Create handles card creation. The accountId must reference an existing
// account; the card type must be VIRTUAL or PHYSICAL; PAN and CVV must match
// the configured formats.
// @Summary Create a new card
// @Accept json
// @Produce json
// @Success 201 {object} dto.CardRead
// @Failure 400 {object} common.ProblemDetails
// @Router /card [post]
func Create(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateCardRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.CreateCard(c.Context(), dto.CardCreate{
			AccountID: input.AccountID,
			Type:      input.TypeOfCard,
			Pan:       input.Pan,
			Cvv:       input.Cvv,
			CardAlias: input.CardAlias,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// List handles the paginated, filtered listing.
func List(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := dto.CardListFilter{
			CardAlias: c.Query("cardAlias"),
			Pan:       c.Query("pan"),
		}
		if raw := c.Query("accountId"); raw != "" {
			id, err := common.QueryID(c, "accountId")
			if err != nil {
				return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid accountId", err.Error())
			}
			filter.AccountID = &id
		}
		if raw := c.Query("cardType"); raw != "" {
			cardType, err := domain.ParseCardType(raw)
			if err != nil {
				return common.DomainErrorJSON(c, err)
			}
			filter.Type = &cardType
		}
		result, err := svc.ListCards(c.Context(), filter,
			c.QueryInt("page", 0), c.QueryInt("size", 10),
			c.QueryBool("showSensitiveData", false))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(result)
	}
}

func GetByID(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "id")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid card id", err.Error())
		}
		card, err := svc.GetCard(c.Context(), id, c.QueryBool("showSensitiveData", false))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(card)
	}
}

func Update(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "cardId")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid card id", err.Error())
		}
		input, err := common.BindAndValidate[UpdateCardRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.UpdateCard(c.Context(), id, dto.CardUpdate{
			CardAlias: input.CardAlias,
		})
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(updated)
	}
}

func Delete(svc Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParamID(c, "cardId")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid card id", err.Error())
		}
		if err := svc.DeleteCard(c.Context(), id); err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return c.JSON(common.Response{
			Status:  fiber.StatusOK,
			Message: common.Message("card.deletion.successful", id),
		})
	}
}
