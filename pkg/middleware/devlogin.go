package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DefaultUserID is the single-user id everything belongs to until real
// accounts exist.
const DefaultUserID = "00000000-0000-0000-0000-000000000000"

const uidCookie = "SW_UID"

// DevLogin resolves the acting user id from cookie or ?uid= and stashes it
// on the context. Missing both falls back to the fixed single-user id.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(uidCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					uid = q
				} else {
					uid = DefaultUserID
				}
				c.SetCookie(&http.Cookie{Name: uidCookie, Value: uid, Path: "/"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
