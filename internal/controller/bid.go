package controller

import (
	"gigflow-api/internal/entity"
	"gigflow-api/internal/service"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}
	outer.POST("/bids", h.PostBid)
	outer.GET("/bids/:gigId", h.GetGigBids)
	outer.PATCH("/bids/:bidId/hire", h.HireBid)

	return h
}

type postBidInput struct {
	GigId   string  `json:"gigId" validate:"required,max=100"`
	Price   float64 `json:"price" validate:"required,gt=0"`
	Message string  `json:"message" validate:"required,max=1000"`
}

// /bids
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
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

	freelancer := requesterId(c)
	if freelancer == "" {
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"}); e != nil {
			return e
		}

		return nil
	}

	model := &entity.CreateBidInput{
		GigId: input.GigId, FreelancerId: freelancer,
		Price: input.Price, Message: input.Message,
	}

	bid, err := h.bidService.PlaceBid(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, bid); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no gig with given id"}); e != nil {
			return e
		}
	case service.ErrGigNotOpen:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Gig is no longer accepting bids"}); e != nil {
			return e
		}
	case service.ErrOwnBidNotAllowed:
		if e := c.JSON(http.StatusForbidden, errorResponse{"You can't bid on your own gig"}); e != nil {
			return e
		}
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

type getGigBidsInput struct {
	GigId  string `param:"gigId" validate:"required,max=100"`
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
}

func newGetGigBidsInput() getGigBidsInput {
	return getGigBidsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /bids/:gigId
func (h *bidRoutesHandler) GetGigBids(c echo.Context) error {
	var input = newGetGigBidsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.GigId = c.Param("gigId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetGigBids(c.Request().Context(), input.GigId, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, bids); e != nil {
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
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type hireBidInput struct {
	BidId string `param:"bidId" validate:"required,max=100"`
}

// /bids/:bidId/hire
func (h *bidRoutesHandler) HireBid(c echo.Context) error {
	var input hireBidInput
	input.BidId = c.Param("bidId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	requester := requesterId(c)
	if requester == "" {
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"}); e != nil {
			return e
		}

		return nil
	}

	view, err := h.bidService.HireBid(c.Request().Context(), input.BidId, requester)
	if err == nil {
		if e := c.JSON(http.StatusOK, view); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case service.ErrUserHasNoAccessToGig:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Gig is not open or you are not its owner"}); e != nil {
			return e
		}
	case service.ErrBidNotPending:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Bid was already hired or rejected"}); e != nil {
			return e
		}
	case service.ErrHireConflict:
		if e := c.JSON(http.StatusConflict, errorResponse{"A concurrent hire won, nothing was changed; refresh and retry"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
