package http

import (
	"net/http"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating gateway in front of this
// service. The service trusts them; verifying credentials is the gateway's
// job.
const (
	HeaderUserID       = "X-User-Id"
	HeaderUserStaff    = "X-User-Staff"
	HeaderUserMerchant = "X-User-Merchant"
)

// actorFromRequest builds the acting identity from the gateway headers.
// A missing or malformed user id yields 401.
func actorFromRequest(ctx echo.Context) (account.Actor, error) {
	rawID := ctx.Request().Header.Get(HeaderUserID)
	if rawID == "" {
		return account.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return account.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid identity")
	}

	actor, err := account.NewActor(id,
		ctx.Request().Header.Get(HeaderUserStaff) == "true",
		ctx.Request().Header.Get(HeaderUserMerchant) == "true")
	if err != nil {
		return account.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid identity")
	}

	return actor, nil
}
