package controller

import (
	"gigflow-api/internal/entity"
	"gigflow-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type gigRoutesHandler struct {
	gigService service.Gig
	validate   *validator.Validate
}

func newGigRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *gigRoutesHandler {
	h := &gigRoutesHandler{gigService: services.Gig, validate: v}
	outer.POST("/gigs", h.PostGig)
	outer.GET("/gigs", h.GetGigs)
	outer.GET("/gigs/:gigId", h.GetGig)

	return h
}

type postGigInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=2000"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

// /gigs
func (h *gigRoutesHandler) PostGig(c echo.Context) error {
	var input postGigInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	owner := requesterId(c)
	if owner == "" {
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"}); e != nil {
			return e
		}

		return nil
	}

	model := &entity.CreateGigInput{
		Title: input.Title, Description: input.Description,
		Budget: input.Budget, OwnerId: owner,
	}

	gig, err := h.gigService.CreateGig(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, gig); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getGigsInput struct {
	Search string `query:"search" validate:"max=100"`
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
}

func newGetGigsInput() getGigsInput {
	return getGigsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /gigs
func (h *gigRoutesHandler) GetGigs(c echo.Context) error {
	var input = newGetGigsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	gigs, err := h.gigService.GetOpenGigs(c.Request().Context(), input.Search, pg)
	if err != nil {
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusOK, gigs); e != nil {
		return e
	}

	return nil
}

type getGigInput struct {
	GigId string `param:"gigId" validate:"required,max=100"`
}

// /gigs/:gigId
func (h *gigRoutesHandler) GetGig(c echo.Context) error {
	var input getGigInput
	input.GigId = c.Param("gigId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	gig, err := h.gigService.GetGigById(c.Request().Context(), input.GigId)
	if err == nil {
		if e := c.JSON(http.StatusOK, gig); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no gig with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
